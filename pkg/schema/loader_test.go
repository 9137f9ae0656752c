package schema

import (
	"strings"
	"testing"
	"testing/fstest"
)

func mapFS(doc string) fstest.MapFS {
	return fstest.MapFS{
		"doc.yaml": &fstest.MapFile{Data: []byte(doc)},
	}
}

func TestLoadFSValidDocument(t *testing.T) {
	fsys := mapFS(`
type: test-letter
label: Test Letter
fields:
  - name: senderName
    label: Sender Name
    kind: text
    required: true
  - name: urgency
    label: Urgency
    kind: select
    options: [Low, High]
`)
	schemas, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	doc, ok := schemas["test-letter"]
	if !ok {
		t.Fatal("test-letter not loaded")
	}
	if len(doc.Fields) != 2 {
		t.Fatalf("fields = %d, want 2", len(doc.Fields))
	}
	if !doc.Fields[0].Required {
		t.Fatal("required flag lost in parse")
	}
}

func TestLoadFSIgnoresNonYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"README.md": &fstest.MapFile{Data: []byte("# not a schema")},
	}
	schemas, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if len(schemas) != 0 {
		t.Fatalf("loaded %d schemas from non-YAML files", len(schemas))
	}
}

func TestLoadFSRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{
			"missing type",
			"label: Letter\nfields:\n  - {name: a, label: A, kind: text}\n",
			"declares no document type",
		},
		{
			"missing label",
			"type: t\nfields:\n  - {name: a, label: A, kind: text}\n",
			"has no label",
		},
		{
			"no fields",
			"type: t\nlabel: T\n",
			"declares no fields",
		},
		{
			"duplicate field",
			"type: t\nlabel: T\nfields:\n  - {name: a, label: A, kind: text}\n  - {name: a, label: B, kind: text}\n",
			`declares field "a" twice`,
		},
		{
			"unknown kind",
			"type: t\nlabel: T\nfields:\n  - {name: a, label: A, kind: checkbox}\n",
			"unknown kind",
		},
		{
			"select without options",
			"type: t\nlabel: T\nfields:\n  - {name: a, label: A, kind: select}\n",
			"declares no options",
		},
		{
			"options on non-select",
			"type: t\nlabel: T\nfields:\n  - {name: a, label: A, kind: text, options: [x]}\n",
			"not a select",
		},
		{
			"bad condition",
			"type: t\nlabel: T\nfields:\n  - {name: a, label: A, kind: text}\nconditionalRules:\n  - when: 'a = yes'\n    require: [a]\n",
			"unexpected '='",
		},
		{
			"conditional undeclared field",
			"type: t\nlabel: T\nfields:\n  - {name: a, label: A, kind: text}\nconditionalRules:\n  - when: 'a == \"Yes\"'\n    require: [b]\n",
			`undeclared field "b"`,
		},
		{
			"unknown relation",
			"type: t\nlabel: T\nfields:\n  - {name: a, label: A, kind: date}\n  - {name: b, label: B, kind: date}\ndateRules:\n  - {field: a, related: b, relation: sameWeek}\n",
			"unknown relation",
		},
		{
			"withinDays without days",
			"type: t\nlabel: T\nfields:\n  - {name: a, label: A, kind: date}\n  - {name: b, label: B, kind: date}\ndateRules:\n  - {field: a, related: b, relation: withinDays}\n",
			"positive day count",
		},
		{
			"ceiling without bound",
			"type: t\nlabel: T\nfields:\n  - {name: a, label: A, kind: number}\nnumericRules:\n  - {kind: ceiling, field: a}\n",
			"neither max nor const",
		},
		{
			"sumMax one field",
			"type: t\nlabel: T\nfields:\n  - {name: a, label: A, kind: number}\nnumericRules:\n  - {kind: sumMax, fields: [a], max: 7}\n",
			"at least two fields",
		},
		{
			"advisory without message",
			"type: t\nlabel: T\nfields:\n  - {name: a, label: A, kind: number}\nadvisories:\n  - {field: a, min: 30}\n",
			"no message",
		},
		{
			"cardinality zero minimum",
			"type: t\nlabel: T\nfields:\n  - {name: a, label: A, kind: text}\ncardinality:\n  - {fields: [a], min: 0}\n",
			"positive minimum",
		},
		{
			"cardinality too few fields",
			"type: t\nlabel: T\nfields:\n  - {name: a, label: A, kind: text}\ncardinality:\n  - {fields: [a], min: 2}\n",
			"fewer fields",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFS(mapFS(tc.doc))
			if err == nil {
				t.Fatal("LoadFS accepted a malformed document")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadFSRejectsDuplicateType(t *testing.T) {
	doc := "type: t\nlabel: T\nfields:\n  - {name: a, label: A, kind: text}\n"
	fsys := fstest.MapFS{
		"one.yaml": &fstest.MapFile{Data: []byte(doc)},
		"two.yaml": &fstest.MapFile{Data: []byte(doc)},
	}
	if _, err := LoadFS(fsys); err == nil || !strings.Contains(err.Error(), "duplicate document type") {
		t.Fatalf("LoadFS = %v, want duplicate type error", err)
	}
}
