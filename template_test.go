package jayson_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	jayson "github.com/reoring/jayson"
)

var fixedNow = func() time.Time { return time.Date(2024, 2, 3, 4, 5, 6, 789_000_000, time.UTC) }

func TestGenerateTemplate_RequiredOnly(t *testing.T) {
	t.Parallel()

	s := schemaOf(t, `{"type":"object","required":["n"],"properties":{"n":{"type":"string"},"m":{"type":"number"}}}`)
	assert.Equal(t, `{"n":""}`, jayson.GenerateTemplate(s, jayson.TemplateOpt{}).String())
	assert.Equal(t, `{"n":"","m":0}`, jayson.GenerateTemplate(s, jayson.TemplateOpt{IncludeOptional: true}).String())
}

func TestGenerateTemplate_Dispatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		schema string
		opt    jayson.TemplateOpt
		want   string
	}{
		{"enum first", `{"type":"string","enum":["b","a"],"format":"email"}`, jayson.TemplateOpt{}, `"b"`},
		{"email", `{"type":"string","format":"email"}`, jayson.TemplateOpt{}, `"user@example.com"`},
		{"date-time uses clock", `{"type":"string","format":"date-time"}`, jayson.TemplateOpt{Now: fixedNow}, `"2024-02-03T04:05:06.789Z"`},
		{"date", `{"type":"string","format":"date"}`, jayson.TemplateOpt{Now: fixedNow}, `"2024-02-03"`},
		{"time", `{"type":"string","format":"time"}`, jayson.TemplateOpt{Now: fixedNow}, `"04:05:06"`},
		{"uuid", `{"type":"string","format":"uuid"}`, jayson.TemplateOpt{}, `"550e8400-e29b-41d4-a716-446655440000"`},
		{"unknown format", `{"type":"string","format":"color"}`, jayson.TemplateOpt{}, `"<color>"`},
		{"pattern", `{"type":"string","pattern":"^[A-Z]{3}$"}`, jayson.TemplateOpt{}, `"<matches: ^[A-Z]{3}$>"`},
		{"plain string", `{"type":"string"}`, jayson.TemplateOpt{}, `""`},
		{"minimum", `{"type":"integer","minimum":5,"maximum":9}`, jayson.TemplateOpt{}, `5`},
		{"negative maximum", `{"type":"number","maximum":-3}`, jayson.TemplateOpt{}, `-3`},
		{"positive maximum", `{"type":"number","maximum":7}`, jayson.TemplateOpt{}, `0`},
		{"boolean", `{"type":"boolean"}`, jayson.TemplateOpt{}, `false`},
		{"null", `{"type":"null"}`, jayson.TemplateOpt{}, `null`},
		{"union", `{"type":["string","null"]}`, jayson.TemplateOpt{}, `null`},
		{"no type", `{"properties":{"a":{"type":"string"}}}`, jayson.TemplateOpt{}, `null`},
		{"array one item", `{"type":"array","minItems":3,"items":{"type":"integer"}}`, jayson.TemplateOpt{}, `[0]`},
		{"array without items", `{"type":"array"}`, jayson.TemplateOpt{}, `[]`},
		{"default ignored", `{"type":"string","default":"x"}`, jayson.TemplateOpt{}, `""`},
		{"default verbatim", `{"type":"object","default":{"k":[1]},"required":["a"],"properties":{"a":{}}}`, jayson.TemplateOpt{UseDefaults: true}, `{"k":[1]}`},
		{"nested defaults", `{"type":"object","required":["a"],"properties":{"a":{"type":"integer","default":4}}}`, jayson.TemplateOpt{UseDefaults: true}, `{"a":4}`},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := jayson.GenerateTemplate(schemaOf(t, tc.schema), tc.opt)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestGenerateTemplate_UndeclaredRequiredIgnored(t *testing.T) {
	t.Parallel()

	s := schemaOf(t, `{"type":"object","required":["ghost"],"properties":{"a":{"type":"string"}}}`)
	assert.Equal(t, `{}`, jayson.GenerateTemplate(s, jayson.TemplateOpt{}).String())
}
