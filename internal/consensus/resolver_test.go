package consensus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ecoscan/domain/audit"
)

// Mock implementations for testing
type MockClassifier struct {
	mock.Mock
	name string
}

func (m *MockClassifier) Name() string { return m.name }

func (m *MockClassifier) Classify(ctx context.Context, items []string) (map[string]audit.AgentVerdict, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]audit.AgentVerdict), args.Error(1)
}

type MockArbiter struct {
	mock.Mock
}

func (m *MockArbiter) Arbitrate(ctx context.Context, item string, a, b audit.AgentVerdict) (audit.AgentVerdict, error) {
	args := m.Called(ctx, item, a, b)
	return args.Get(0).(audit.AgentVerdict), args.Error(1)
}

func verdict(status audit.Status, explanation string) audit.AgentVerdict {
	return audit.AgentVerdict{Status: status, Explanation: explanation}
}

func TestResolve_FullAgreementNeverInvokesArbiter(t *testing.T) {
	items := []string{"Palm Oil", "100% Natural"}
	shared := map[string]audit.AgentVerdict{
		"Palm Oil":     verdict(audit.StatusRed, "deforestation risk"),
		"100% Natural": verdict(audit.StatusYellow, "vague"),
	}

	scientist := &MockClassifier{name: "scientist"}
	critic := &MockClassifier{name: "critic"}
	arbiter := &MockArbiter{}
	scientist.On("Classify", mock.Anything, items).Return(shared, nil)
	critic.On("Classify", mock.Anything, items).Return(shared, nil)

	resolver := NewResolver(scientist, critic, arbiter)
	verdicts := resolver.Resolve(context.Background(), items)

	require.Len(t, verdicts, 2)
	assert.Equal(t, "Palm Oil", verdicts[0].Item)
	assert.Equal(t, audit.StatusRed, verdicts[0].Status)
	assert.True(t, verdicts[0].Consensus)
	assert.Equal(t, "100% Natural", verdicts[1].Item)
	assert.Equal(t, audit.StatusYellow, verdicts[1].Status)
	assert.True(t, verdicts[1].Consensus)

	arbiter.AssertNotCalled(t, "Arbitrate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResolve_DisagreementInvokesArbiterExactlyOnce(t *testing.T) {
	items := []string{"Palm Oil"}

	scientist := &MockClassifier{name: "scientist"}
	critic := &MockClassifier{name: "critic"}
	arbiter := &MockArbiter{}
	scientist.On("Classify", mock.Anything, items).Return(map[string]audit.AgentVerdict{
		"Palm Oil": verdict(audit.StatusRed, "deforestation"),
	}, nil)
	critic.On("Classify", mock.Anything, items).Return(map[string]audit.AgentVerdict{
		"Palm Oil": verdict(audit.StatusGreen, "RSPO certified"),
	}, nil)
	arbiter.On("Arbitrate", mock.Anything, "Palm Oil", mock.Anything, mock.Anything).
		Return(verdict(audit.StatusRed, "environmental impact outweighs certification"), nil)

	resolver := NewResolver(scientist, critic, arbiter)
	verdicts := resolver.Resolve(context.Background(), items)

	require.Len(t, verdicts, 1)
	assert.Equal(t, audit.StatusRed, verdicts[0].Status)
	assert.Equal(t, "environmental impact outweighs certification", verdicts[0].Explanation)
	assert.False(t, verdicts[0].Consensus)
	arbiter.AssertNumberOfCalls(t, "Arbitrate", 1)
}

func TestResolve_SingleOpinionBackfillCountsAsConsensus(t *testing.T) {
	items := []string{"Almond Milk"}

	scientist := &MockClassifier{name: "scientist"}
	critic := &MockClassifier{name: "critic"}
	arbiter := &MockArbiter{}
	scientist.On("Classify", mock.Anything, items).Return(map[string]audit.AgentVerdict{}, nil)
	critic.On("Classify", mock.Anything, items).Return(map[string]audit.AgentVerdict{
		"Almond Milk": verdict(audit.StatusYellow, "high water use"),
	}, nil)

	resolver := NewResolver(scientist, critic, arbiter)
	verdicts := resolver.Resolve(context.Background(), items)

	require.Len(t, verdicts, 1)
	assert.Equal(t, audit.StatusYellow, verdicts[0].Status)
	assert.Equal(t, "high water use", verdicts[0].Explanation)
	assert.True(t, verdicts[0].Consensus)
	arbiter.AssertNotCalled(t, "Arbitrate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResolve_ItemWithNoVerdictIsDropped(t *testing.T) {
	items := []string{"Mystery Additive", "Oats"}
	oats := map[string]audit.AgentVerdict{
		"Oats": verdict(audit.StatusGreen, "plant-based staple"),
	}

	scientist := &MockClassifier{name: "scientist"}
	critic := &MockClassifier{name: "critic"}
	arbiter := &MockArbiter{}
	scientist.On("Classify", mock.Anything, items).Return(oats, nil)
	critic.On("Classify", mock.Anything, items).Return(oats, nil)

	resolver := NewResolver(scientist, critic, arbiter)
	verdicts := resolver.Resolve(context.Background(), items)

	require.Len(t, verdicts, 1)
	assert.Equal(t, "Oats", verdicts[0].Item)
	assert.LessOrEqual(t, len(verdicts), len(items))
}

func TestResolve_FailedAgentTreatedAsEmptyReport(t *testing.T) {
	items := []string{"Beef Extract"}

	scientist := &MockClassifier{name: "scientist"}
	critic := &MockClassifier{name: "critic"}
	arbiter := &MockArbiter{}
	scientist.On("Classify", mock.Anything, items).Return(nil, assert.AnError)
	critic.On("Classify", mock.Anything, items).Return(map[string]audit.AgentVerdict{
		"Beef Extract": verdict(audit.StatusRed, "high carbon"),
	}, nil)

	resolver := NewResolver(scientist, critic, arbiter)
	verdicts := resolver.Resolve(context.Background(), items)

	require.Len(t, verdicts, 1)
	assert.Equal(t, audit.StatusRed, verdicts[0].Status)
	assert.True(t, verdicts[0].Consensus)
}

func TestResolve_ArbiterFailureFallsBackToYellow(t *testing.T) {
	items := []string{"Palm Oil"}

	scientist := &MockClassifier{name: "scientist"}
	critic := &MockClassifier{name: "critic"}
	arbiter := &MockArbiter{}
	scientist.On("Classify", mock.Anything, items).Return(map[string]audit.AgentVerdict{
		"Palm Oil": verdict(audit.StatusRed, "deforestation"),
	}, nil)
	critic.On("Classify", mock.Anything, items).Return(map[string]audit.AgentVerdict{
		"Palm Oil": verdict(audit.StatusGreen, "certified"),
	}, nil)
	arbiter.On("Arbitrate", mock.Anything, "Palm Oil", mock.Anything, mock.Anything).
		Return(audit.AgentVerdict{}, assert.AnError)

	resolver := NewResolver(scientist, critic, arbiter)
	verdicts := resolver.Resolve(context.Background(), items)

	require.Len(t, verdicts, 1)
	assert.Equal(t, audit.StatusYellow, verdicts[0].Status)
	assert.Equal(t, ArbiterUnavailable, verdicts[0].Explanation)
	assert.False(t, verdicts[0].Consensus)
}

func TestResolve_DeterministicForFixedAgentResponses(t *testing.T) {
	items := []string{"Palm Oil", "Sugar", "100% Natural"}
	reportA := map[string]audit.AgentVerdict{
		"Palm Oil":     verdict(audit.StatusRed, "deforestation"),
		"Sugar":        verdict(audit.StatusYellow, "monoculture"),
		"100% Natural": verdict(audit.StatusYellow, "vague"),
	}
	reportB := map[string]audit.AgentVerdict{
		"Palm Oil":     verdict(audit.StatusGreen, "certified"),
		"Sugar":        verdict(audit.StatusYellow, "monoculture"),
		"100% Natural": verdict(audit.StatusYellow, "unverifiable"),
	}

	run := func() []audit.FinalVerdict {
		scientist := &MockClassifier{name: "scientist"}
		critic := &MockClassifier{name: "critic"}
		arbiter := &MockArbiter{}
		scientist.On("Classify", mock.Anything, items).Return(reportA, nil)
		critic.On("Classify", mock.Anything, items).Return(reportB, nil)
		arbiter.On("Arbitrate", mock.Anything, "Palm Oil", mock.Anything, mock.Anything).
			Return(verdict(audit.StatusRed, "ruling"), nil)

		return NewResolver(scientist, critic, arbiter).Resolve(context.Background(), items)
	}

	first := run()
	second := run()
	assert.Equal(t, first, second)
	require.Len(t, first, 3)
	assert.Equal(t, []string{"Palm Oil", "Sugar", "100% Natural"},
		[]string{first[0].Item, first[1].Item, first[2].Item})
}

func TestResolve_EmptyItemSet(t *testing.T) {
	scientist := &MockClassifier{name: "scientist"}
	critic := &MockClassifier{name: "critic"}
	arbiter := &MockArbiter{}

	resolver := NewResolver(scientist, critic, arbiter)
	verdicts := resolver.Resolve(context.Background(), nil)

	assert.Empty(t, verdicts)
	scientist.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
	critic.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
}

func TestBuildItemSet(t *testing.T) {
	items := BuildItemSet([]string{"Oats", "Palm Oil", "Oats"}, []string{"100% Natural"})
	assert.Equal(t, []string{"Oats", "Palm Oil", "Oats", "100% Natural"}, items)

	assert.Empty(t, BuildItemSet(nil, nil))
	assert.Equal(t, []string{"claim"}, BuildItemSet(nil, []string{"claim"}))
}
