package llm

import "context"

// FakeClient is an in-memory Client for tests. Call counts and last
// arguments are recorded so tests can assert which remote calls were
// (not) issued.
type FakeClient struct {
	DescribeFn func(mimeType string, data []byte) (string, error)
	GenerateFn func(system, prompt string) (string, error)

	DescribeCalls int
	GenerateCalls int
	LastSystem    string
	LastPrompt    string
}

func (f *FakeClient) Name() string { return "fake" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) DescribeImage(_ context.Context, _, mimeType string, data []byte) (string, error) {
	f.DescribeCalls++
	if f.DescribeFn != nil {
		return f.DescribeFn(mimeType, data)
	}
	return "a plain design", nil
}

func (f *FakeClient) GenerateDocument(_ context.Context, system, prompt string) (string, error) {
	f.GenerateCalls++
	f.LastSystem = system
	f.LastPrompt = prompt
	if f.GenerateFn != nil {
		return f.GenerateFn(system, prompt)
	}
	return "<!DOCTYPE html><html></html>", nil
}
