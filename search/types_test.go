package search_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/internal/logging"
	"github.com/katalvlaran/lvsearch/search"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := search.NewConfig[int, string]()
	require.NoError(t, err)
	assert.Equal(t, context.Background(), cfg.Ctx)
	assert.NotNil(t, cfg.Logger)
	assert.Zero(t, cfg.MaxExpansions)
	assert.NotNil(t, cfg.OnExpand)
	assert.NotNil(t, cfg.OnGenerate)
}

func TestNewConfig_OptionViolations(t *testing.T) {
	_, err := search.NewConfig[int, string](search.WithMaxExpansions(-1))
	require.ErrorIs(t, err, search.ErrOptionViolation)

	// hook written for another node type
	wrong := search.WithOnExpand(func(*search.Node[string, string]) {})
	_, err = search.NewConfig[int, string](wrong)
	require.ErrorIs(t, err, search.ErrOptionViolation)

	wrongGen := search.WithOnGenerate(func(*search.Node[int, int]) {})
	_, err = search.NewConfig[int, string](wrongGen)
	require.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestNewConfig_NilArgumentsKeepDefaults(t *testing.T) {
	//nolint:staticcheck // nil context on purpose
	cfg, err := search.NewConfig[int, string](search.WithContext(nil), search.WithLogger(nil))
	require.NoError(t, err)
	assert.NotNil(t, cfg.Ctx)
	assert.NotNil(t, cfg.Logger)
}

func TestConfig_ExpandingHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg, err := search.NewConfig[int, string](search.WithContext(ctx))
	require.NoError(t, err)

	err = cfg.Expanding(search.NewNode[int, string](1))
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, cfg.Stats().Expanded)
}

func TestConfig_ExpansionBudgetAndStats(t *testing.T) {
	var stats search.Stats
	var expanded, generated []int
	cfg, err := search.NewConfig[int, string](
		search.WithMaxExpansions(2),
		search.WithStats(&stats),
		search.WithOnExpand(func(n *search.Node[int, string]) { expanded = append(expanded, n.State()) }),
		search.WithOnGenerate(func(n *search.Node[int, string]) { generated = append(generated, n.State()) }),
	)
	require.NoError(t, err)

	require.NoError(t, cfg.Expanding(search.NewNode[int, string](1)))
	require.NoError(t, cfg.Expanding(search.NewNode[int, string](2)))
	require.ErrorIs(t, cfg.Expanding(search.NewNode[int, string](3)), search.ErrExpansionLimit)

	cfg.Generated(5)
	cfg.Admitted(search.NewNode[int, string](7), 4)
	cfg.Admitted(search.NewNode[int, string](8), 2)

	n, err := cfg.Finish(nil, search.ErrNoSolution)
	assert.Nil(t, n)
	assert.ErrorIs(t, err, search.ErrNoSolution)

	assert.Equal(t, []int{1, 2}, expanded)
	assert.Equal(t, []int{7, 8}, generated)
	assert.Equal(t, search.Stats{Expanded: 2, Generated: 5, MaxFrontier: 4}, stats)
}

func TestConfig_LogsExpansionsAndOutcome(t *testing.T) {
	var buf bytes.Buffer
	cfg, err := search.NewConfig[int, string](search.WithLogger(logging.NewWithWriter(&buf, slog.LevelDebug)))
	require.NoError(t, err)

	root := search.NewNode[int, string](42)
	require.NoError(t, cfg.Expanding(root))
	_, _ = cfg.Finish(root, nil)

	out := buf.String()
	assert.Contains(t, out, "msg=expand")
	assert.Contains(t, out, `node="<Node 42>"`)
	assert.Contains(t, out, `msg="goal reached"`)
}
