package nlu_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-assistant/internal/nlu"
)

func TestLoadRules_Default(t *testing.T) {
	rs, err := nlu.LoadRules(nlu.DefaultRules())
	require.NoError(t, err)

	want := []nlu.IntentKind{
		nlu.IntentView, nlu.IntentCreate, nlu.IntentDelete, nlu.IntentComplete, nlu.IntentIncomplete,
		nlu.IntentUpdate, nlu.IntentSearch, nlu.IntentStats, nlu.IntentClearCompleted,
	}
	require.Len(t, rs.Intents, len(want))
	for i, k := range want {
		assert.Equal(t, k, rs.Intents[i].Kind, "intent %d", i)
		assert.NotEmpty(t, rs.Intents[i].Matchers, "intent %s", k)
	}
	assert.Len(t, rs.Priorities, 3)
	assert.Len(t, rs.Topics, 6)
	assert.NotNil(t, rs.CategoryExplicit)
	assert.NotNil(t, rs.Hashtag)
}

func TestLoadRules_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"empty", ``, nlu.ErrEmptyRules},
		{"no intents", "intents: []\n", nlu.ErrEmptyRules},
		{"unknown kind", "intents:\n  - kind: dance\n    matchers: ['x']\n", nlu.ErrUnknownIntent},
		{"duplicate kind", "intents:\n  - kind: view\n    matchers: ['x']\n  - kind: view\n    matchers: ['y']\n", nlu.ErrInvalidRule},
		{"no matchers", "intents:\n  - kind: view\n", nlu.ErrInvalidRule},
		{"bad regex", "intents:\n  - kind: view\n    matchers: ['(']\n", nlu.ErrInvalidRule},
		{"bad priority", "intents:\n  - kind: view\n    matchers: ['x']\npriority:\n  keywords:\n    - value: extreme\n      words: [x]\n", nlu.ErrInvalidRule},
		{"explicit without capture", "intents:\n  - kind: view\n    matchers: ['x']\ncategory:\n  explicit: 'tag'\n", nlu.ErrInvalidRule},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := nlu.LoadRules([]byte(tc.yaml))
			assert.True(t, errors.Is(err, tc.want), "expected %v, got %v", tc.want, err)
		})
	}

	_, err := nlu.LoadRules([]byte("intents: [\n"))
	assert.Error(t, err)
}

func TestParseIntentKind(t *testing.T) {
	k, err := nlu.ParseIntentKind("clear_completed")
	require.NoError(t, err)
	assert.Equal(t, nlu.IntentClearCompleted, k)
	assert.Equal(t, "clear_completed", k.String())

	_, err = nlu.ParseIntentKind("none")
	assert.ErrorIs(t, err, nlu.ErrUnknownIntent)
}
