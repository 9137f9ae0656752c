package schema

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/qanoonsoft/docwizard/pkg/condition"
)

// LoadFS walks the provided filesystem and parses every YAML schema document
// it finds. Each file declares exactly one document type. Duplicate types,
// duplicate field names, and rules referencing undeclared fields are
// construction-time errors so a malformed schema never reaches a wizard
// session.
func LoadFS(fsys fs.FS) (map[DocumentType]DocumentSchema, error) {
	schemas := make(map[DocumentType]DocumentSchema)
	if fsys == nil {
		return schemas, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("schema: read %s: %w", path, err)
		}

		var doc DocumentSchema
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("schema: parse %s: %w", path, err)
		}

		if doc.Type == "" {
			return fmt.Errorf("schema: file %s declares no document type", path)
		}
		if _, exists := schemas[doc.Type]; exists {
			return fmt.Errorf("schema: duplicate document type %q (file %s)", doc.Type, path)
		}
		if err := checkSchema(doc); err != nil {
			return fmt.Errorf("schema: file %s: %w", path, err)
		}

		schemas[doc.Type] = doc
		return nil
	})
	if err != nil {
		return nil, err
	}

	return schemas, nil
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

var validKinds = map[FieldKind]struct{}{
	KindText:     {},
	KindTextarea: {},
	KindEmail:    {},
	KindTel:      {},
	KindNumber:   {},
	KindDate:     {},
	KindTime:     {},
	KindSelect:   {},
}

var validRelations = map[DateRelation]struct{}{
	RelationNotAfter:    {},
	RelationNotBefore:   {},
	RelationMustBeAfter: {},
	RelationWithinDays:  {},
}

// checkSchema verifies internal consistency of a parsed document schema.
func checkSchema(doc DocumentSchema) error {
	if doc.Label == "" {
		return fmt.Errorf("document %q has no label", doc.Type)
	}
	if len(doc.Fields) == 0 {
		return fmt.Errorf("document %q declares no fields", doc.Type)
	}

	declared := make(map[string]struct{}, len(doc.Fields))
	for _, field := range doc.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return fmt.Errorf("document %q declares a field with an empty name", doc.Type)
		}
		if _, dup := declared[name]; dup {
			return fmt.Errorf("document %q declares field %q twice", doc.Type, name)
		}
		declared[name] = struct{}{}

		if _, ok := validKinds[field.Kind]; !ok {
			return fmt.Errorf("field %q has unknown kind %q", name, field.Kind)
		}
		if field.Kind == KindSelect && len(field.Options) == 0 {
			return fmt.Errorf("select field %q declares no options", name)
		}
		if field.Kind != KindSelect && len(field.Options) > 0 {
			return fmt.Errorf("field %q declares options but is not a select", name)
		}
	}

	conditions := make([]string, 0, 8)
	for _, rule := range doc.Conditionals {
		conditions = append(conditions, rule.When)
	}
	for _, rule := range doc.DateRules {
		conditions = append(conditions, rule.When)
	}
	for _, rule := range doc.NumericRules {
		conditions = append(conditions, rule.When)
	}
	for _, rule := range doc.Advisories {
		conditions = append(conditions, rule.When)
	}
	for _, rule := range doc.Cardinality {
		conditions = append(conditions, rule.When)
	}
	for _, expr := range conditions {
		if err := condition.Check(expr); err != nil {
			return fmt.Errorf("document %q: %w", doc.Type, err)
		}
	}

	ref := func(rule string, names ...string) error {
		for _, name := range names {
			if name == "" {
				continue
			}
			if _, ok := declared[name]; !ok {
				return fmt.Errorf("%s references undeclared field %q", rule, name)
			}
		}
		return nil
	}

	for _, rule := range doc.Conditionals {
		if strings.TrimSpace(rule.When) == "" {
			return fmt.Errorf("document %q has a conditional rule with no condition", doc.Type)
		}
		if len(rule.Require) == 0 {
			return fmt.Errorf("document %q has a conditional rule requiring nothing", doc.Type)
		}
		if err := ref("conditional rule", rule.Require...); err != nil {
			return err
		}
	}
	for _, rule := range doc.DateRules {
		if _, ok := validRelations[rule.Relation]; !ok {
			return fmt.Errorf("date rule on %q has unknown relation %q", rule.Field, rule.Relation)
		}
		if rule.Relation == RelationWithinDays && rule.Days <= 0 {
			return fmt.Errorf("withinDays rule on %q needs a positive day count", rule.Field)
		}
		if err := ref("date rule", rule.Field, rule.Related); err != nil {
			return err
		}
	}
	for _, rule := range doc.NumericRules {
		switch rule.Kind {
		case NumericCeiling:
			if rule.Max == nil && rule.Const == "" {
				return fmt.Errorf("ceiling rule on %q has neither max nor const", rule.Field)
			}
		case NumericFloor:
			if rule.Min == nil && rule.Const == "" {
				return fmt.Errorf("floor rule on %q has neither min nor const", rule.Field)
			}
		case NumericCompare:
			if rule.Related == "" || rule.Op == "" {
				return fmt.Errorf("compare rule on %q needs related and op", rule.Field)
			}
		case NumericSumMax:
			if len(rule.Fields) < 2 {
				return fmt.Errorf("sumMax rule needs at least two fields")
			}
			if rule.Max == nil && rule.Const == "" {
				return fmt.Errorf("sumMax rule has neither max nor const")
			}
		default:
			return fmt.Errorf("unknown numeric rule kind %q", rule.Kind)
		}
		names := append([]string{rule.Field, rule.Related}, rule.Fields...)
		if err := ref("numeric rule", names...); err != nil {
			return err
		}
	}
	for _, rule := range doc.Advisories {
		if rule.Min == nil && rule.Max == nil {
			return fmt.Errorf("advisory on %q has neither min nor max", rule.Field)
		}
		if strings.TrimSpace(rule.Message) == "" {
			return fmt.Errorf("advisory on %q has no message", rule.Field)
		}
		if err := ref("advisory rule", rule.Field); err != nil {
			return err
		}
	}
	for _, rule := range doc.Cardinality {
		if rule.Min <= 0 {
			return fmt.Errorf("cardinality rule needs a positive minimum")
		}
		if len(rule.Fields) < rule.Min {
			return fmt.Errorf("cardinality rule lists fewer fields than its minimum")
		}
		if err := ref("cardinality rule", rule.Fields...); err != nil {
			return err
		}
	}

	return nil
}
