package assessment

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Encode serializes d, stamping the current schema version.
func Encode(d Data) ([]byte, error) {
	d.SchemaVersion = SchemaVersion
	d = d.normalized()
	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode assessment data: %w", err)
	}
	return b, nil
}

// Decode reads a stored blob field by field. A missing, malformed or
// mistyped field is replaced by its empty default and its key is reported in
// bad; Decode never fails.
func Decode(raw []byte) (d Data, bad []string) {
	d = NewData()
	if len(raw) == 0 {
		return d, nil
	}
	if !gjson.ValidBytes(raw) {
		return d, []string{"$"}
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return d, []string{"$"}
	}

	if v := root.Get("schema_version"); v.Type == gjson.Number {
		d.SchemaVersion = int(v.Int())
	}
	if v := root.Get("referral_reason"); v.Type == gjson.String {
		d.ReferralReason = v.String()
	}

	decodeList(root, &d.Scores, &bad, "scores")
	decodeList(root, &d.Observations, &bad, "observations")
	decodeList(root, &d.Recommendations, &bad, "recommendations")
	decodeList(root, &d.XBATests, &bad, "xba_tests", "xbaTests")
	decodeList(root, &d.CHCPassages, &bad, "chc_passages", "chcPassages")

	return d, bad
}

// decodeList unmarshals the first present key of keys into dst.
func decodeList[T any](root gjson.Result, dst *[]T, bad *[]string, keys ...string) {
	for _, key := range keys {
		v := root.Get(key)
		if !v.Exists() || v.Type == gjson.Null {
			continue
		}
		if !v.IsArray() {
			*bad = append(*bad, key)
			return
		}
		var out []T
		if err := json.Unmarshal([]byte(v.Raw), &out); err != nil {
			*bad = append(*bad, key)
			return
		}
		if out != nil {
			*dst = out
		}
		return
	}
}

func (d Data) normalized() Data {
	if d.Scores == nil {
		d.Scores = []Score{}
	}
	if d.Observations == nil {
		d.Observations = []Observation{}
	}
	if d.Recommendations == nil {
		d.Recommendations = []Recommendation{}
	}
	if d.XBATests == nil {
		d.XBATests = []XBATest{}
	}
	if d.CHCPassages == nil {
		d.CHCPassages = []CHCPassage{}
	}
	for i := range d.CHCPassages {
		if d.CHCPassages[i].SelectedSentenceIDs == nil {
			d.CHCPassages[i].SelectedSentenceIDs = []string{}
		}
	}
	return d
}
