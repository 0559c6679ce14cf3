package commands_test

import (
	"context"
	"strings"
	"testing"

	"go.trai.ch/evalrs/cmd/evalrs/commands"
	"go.trai.ch/evalrs/internal/app"
	"go.trai.ch/evalrs/internal/core/domain"
	"go.trai.ch/evalrs/internal/core/ports/mocks"
	"go.trai.ch/evalrs/internal/engine/evaluator"
	"go.uber.org/mock/gomock"
)

type testHarness struct {
	cli    *commands.CLI
	cache  *mocks.MockProjectCache
	mat    *mocks.MockProjectMaterializer
	driver *mocks.MockBuildDriver
}

func newHarness(t *testing.T) *testHarness {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockProjectCache(ctrl)
	mat := mocks.NewMockProjectMaterializer(ctrl)
	driver := mocks.NewMockBuildDriver(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	a := app.New(evaluator.NewEvaluator(cache, mat, driver, logger), cache, logger)
	return &testHarness{
		cli:    commands.New(a),
		cache:  cache,
		mat:    mat,
		driver: driver,
	}
}

func (h *testHarness) expectEvaluation(t *testing.T, wantOpts domain.EvalOptions) {
	t.Helper()
	h.cache.EXPECT().
		Acquire(gomock.Any(), wantOpts.NoCache).
		DoAndReturn(func(manifest domain.Manifest, refresh bool) (*domain.CacheEntry, bool, func(), error) {
			return &domain.CacheEntry{Key: manifest.Fingerprint(), ProjectDir: "/tmp/project"}, false, func() {}, nil
		})
	h.mat.EXPECT().WriteSource("/tmp/project", gomock.Any()).Return(nil)
	h.driver.EXPECT().Run(gomock.Any(), "/tmp/project", wantOpts).Return(0, nil)
}

func TestEval_FromArgument(t *testing.T) {
	h := newHarness(t)
	h.expectEvaluation(t, domain.EvalOptions{})

	h.cli.SetArgs([]string{`println!("hi");`})

	if err := h.cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestEval_FromStdin(t *testing.T) {
	h := newHarness(t)
	h.expectEvaluation(t, domain.EvalOptions{})

	h.cli.SetArgs([]string{})
	h.cli.SetIn(strings.NewReader(`println!("hi");`))

	if err := h.cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestEval_FlagsMapToOptions(t *testing.T) {
	h := newHarness(t)
	h.expectEvaluation(t, domain.EvalOptions{PrintResult: true, Quiet: true, NoCache: true})

	h.cli.SetArgs([]string{"-p", "-q", "--no-cache", "1 + 2"})

	if err := h.cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestEval_EmptyStdin(t *testing.T) {
	h := newHarness(t)

	h.cli.SetArgs([]string{})
	h.cli.SetIn(strings.NewReader("  \n"))

	err := h.cli.Execute(context.Background())
	if err == nil || !strings.Contains(err.Error(), "no snippet provided") {
		t.Errorf("Expected a missing snippet error, got: %v", err)
	}
}

func TestClean(t *testing.T) {
	h := newHarness(t)
	h.cache.EXPECT().Clean().Return(nil)

	h.cli.SetArgs([]string{"clean"})

	if err := h.cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestRoot_Help(t *testing.T) {
	h := newHarness(t)

	h.cli.SetArgs([]string{"--help"})

	if err := h.cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error for help, got: %v", err)
	}
}
