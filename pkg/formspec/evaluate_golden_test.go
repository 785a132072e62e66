package formspec_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-maskfield/pkg/formspec"
	"github.com/goliatone/go-maskfield/pkg/testsupport"
)

func TestEvaluate_Golden(t *testing.T) {
	cases := []struct {
		name   string
		form   string
		values string
		golden string
	}{
		{
			name:   "contact invalid",
			form:   filepath.Join("forms", "contact.yaml"),
			values: filepath.Join("values", "contact_invalid.json"),
			golden: filepath.Join("evaluations", "contact_invalid.json"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := testsupport.LoadForm(t, filepath.Join(testdataRoot(), tc.form))
			values := testsupport.LoadValues(t, filepath.Join(testdataRoot(), tc.values))
			got := formspec.Evaluate(form, values)

			goldenPath := filepath.Join(testdataRoot(), tc.golden)
			testsupport.WriteGolden(t, goldenPath, got)

			var want formspec.Evaluation
			if err := json.Unmarshal(testsupport.MustReadGolden(t, goldenPath), &want); err != nil {
				t.Fatalf("unmarshal golden: %v", err)
			}
			if diff := testsupport.CompareGolden(want, got); diff != "" {
				t.Fatalf("evaluation mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
