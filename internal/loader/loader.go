// File: internal/loader/loader.go
//
// Record-file discovery and decoding. Files declare their record type
// explicitly:
//
//	type: use-case
//	records:
//	  - id: uc-checkout
//	    name: Checkout
//	    ...
//
// A file may also hold a single record (type plus the record fields at top
// level). The declared type is authoritative; nothing is inferred from the
// record's shape.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// recordFilePattern matches the record files under a project directory.
const recordFilePattern = "**/*.{yaml,yml,json}"

// Result carries the loaded collections plus the counts a caller needs to
// tell completeness from correctness.
type Result struct {
	Records      map[schemas.RecordType][]schemas.Record
	FilesLoaded  int
	FilesSkipped int
}

// Loader reads record files from disk.
type Loader struct {
	log *zap.Logger
}

// New creates a Loader.
func New(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{log: logger.Named("loader")}
}

// Load discovers and decodes every record file under dir. Malformed files
// are skipped with a warning and counted, not fatal; only an unreadable
// directory fails the call. Records keep file order within a type, with
// files visited in sorted path order, so the result is reproducible.
func (l *Loader) Load(dir string) (Result, error) {
	res := Result{Records: make(map[schemas.RecordType][]schemas.Record)}

	matches, err := doublestar.Glob(os.DirFS(dir), recordFilePattern)
	if err != nil {
		return res, fmt.Errorf("discover record files in %s: %w", dir, err)
	}
	sort.Strings(matches)

	for _, rel := range matches {
		path := filepath.Join(dir, rel)
		if err := l.loadFile(path, &res); err != nil {
			l.log.Warn("record file skipped", zap.String("path", path), zap.Error(err))
			res.FilesSkipped++
			continue
		}
		res.FilesLoaded++
	}
	l.log.Info("records loaded",
		zap.Int("files", res.FilesLoaded),
		zap.Int("skipped", res.FilesSkipped))
	return res, nil
}

func (l *Loader) loadFile(path string, res *Result) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc map[string]any
	if strings.HasSuffix(path, ".json") {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	declared, _ := doc["type"].(string)
	if declared == "" {
		return fmt.Errorf("file does not declare a record type")
	}
	rt := schemas.RecordType(declared)

	if raw, ok := doc["records"]; ok {
		items, ok := raw.([]any)
		if !ok {
			return fmt.Errorf(`"records" must be a list`)
		}
		for i, item := range items {
			m, ok := item.(map[string]any)
			if !ok {
				return fmt.Errorf("record %d is not a mapping", i+1)
			}
			rec := schemas.RecordFromMap(m)
			if rec.ID == "" {
				return fmt.Errorf("record %d has no id", i+1)
			}
			res.Records[rt] = append(res.Records[rt], rec)
		}
		return nil
	}

	// Single-record file: the record fields sit at the top level.
	delete(doc, "type")
	rec := schemas.RecordFromMap(doc)
	if rec.ID == "" {
		return fmt.Errorf("record has no id")
	}
	res.Records[rt] = append(res.Records[rt], rec)
	return nil
}
