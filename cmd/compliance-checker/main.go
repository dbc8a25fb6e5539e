// cmd/compliance-checker/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"coi-compliance-engine/internal/common/config"
	commonerrors "coi-compliance-engine/internal/common/errors"
	"coi-compliance-engine/internal/common/logger"
	"coi-compliance-engine/internal/engine/catalog"
	"coi-compliance-engine/internal/engine/message"
	"coi-compliance-engine/internal/engine/patterns"
	"coi-compliance-engine/internal/engine/validator"
	"coi-compliance-engine/internal/models"
	"coi-compliance-engine/pkg/phrasebook"
)

// coiSchema validates the shape of a COI document before it reaches the
// engine. Business deficiencies are the engine's job; this only rejects
// documents that are not COI records at all.
const coiSchema = `{
  "type": "object",
  "properties": {
    "limits": {
      "type": "object",
      "additionalProperties": {"type": ["number", "null"]}
    },
    "policyNotes": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    },
    "policyBasis": {"type": "string", "enum": ["", "occurrence", "claims_made"]},
    "wcStatutory": {"type": "boolean"},
    "wcClassCodes": {"type": "array", "items": {"type": "integer"}},
    "endorsements": {"type": "array", "items": {"type": "string"}},
    "additionalInsureds": {"type": "array", "items": {"type": "string"}}
  },
  "additionalProperties": false
}`

func main() {
	var (
		coiPath     = flag.String("coi", "", "path to the COI JSON document (required)")
		tradesFlag  = flag.String("trades", "", "comma-separated required trades (required)")
		projectType = flag.String("project-type", "", "project type, e.g. high_rise")
		tier        = flag.String("tier", "", "program tier, e.g. tier_1")
		format      = flag.String("format", "message", "output format: message or json")
	)
	flag.Parse()

	if *coiPath == "" || *tradesFlag == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	zapLogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLogger.Sync()
	log := logger.NewZapAdapter(zapLogger)

	cat, lib, err := buildEngine(cfg)
	if err != nil {
		zapLogger.Fatal("engine initialization failed", zap.Error(err))
	}

	coi, err := loadCOI(*coiPath)
	if err != nil {
		zapLogger.Fatal("invalid COI document", zap.Error(err), zap.String("path", *coiPath))
	}

	v := validator.New(cat, lib, log)
	project := models.ProjectContext{Type: *projectType, Tier: *tier}
	trades := strings.Split(*tradesFlag, ",")

	result := v.Validate(coi, project, trades)

	switch *format {
	case "json":
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			zapLogger.Fatal("failed to encode result", zap.Error(err))
		}
		fmt.Println(string(out))
	default:
		gen := message.NewGenerator(v.Resolver())
		fmt.Print(gen.BrokerMessage(result))
	}

	if !result.Compliant {
		os.Exit(1)
	}
}

// buildEngine constructs the process-lifetime catalog and pattern
// library, from files when configured and compiled-in defaults
// otherwise. Any inconsistency fails here, before any validation runs.
func buildEngine(cfg *config.Config) (*catalog.Catalog, *patterns.Library, error) {
	var (
		cat *catalog.Catalog
		err error
	)
	if cfg.Engine.CatalogFile != "" {
		cat, err = catalog.Load(cfg.Engine.CatalogFile)
		if err != nil {
			return nil, nil, err
		}
	} else {
		cat = catalog.NewDefault()
	}

	var lib *patterns.Library
	if cfg.Engine.PhraseLibraryFile != "" {
		book, err := phrasebook.Load(cfg.Engine.PhraseLibraryFile)
		if err != nil {
			return nil, nil, err
		}
		lib, err = patterns.NewLibrary(book)
		if err != nil {
			return nil, nil, err
		}
	} else {
		lib = patterns.NewDefaultLibrary()
	}

	return cat, lib, nil
}

func loadCOI(path string) (*models.COIRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	schemaLoader := gojsonschema.NewStringLoader(coiSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)
	validation, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, err
	}
	if !validation.Valid() {
		details := make([]string, 0, len(validation.Errors()))
		for _, desc := range validation.Errors() {
			details = append(details, desc.String())
		}
		return nil, commonerrors.NewInputInvalidError(strings.Join(details, "; "))
	}

	var coi models.COIRecord
	if err := json.Unmarshal(data, &coi); err != nil {
		return nil, err
	}
	return &coi, nil
}
