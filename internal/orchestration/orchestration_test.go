package orchestration_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/orchestration"
	"github.com/agbru/primecalc/internal/orchestration/mocks"
	"github.com/agbru/primecalc/internal/primes"
)

func TestAnalyzeComparisonResults(t *testing.T) {
	t.Parallel()

	parallel := orchestration.RunResult{
		Name: "Parallel (8 workers)", Mode: "parallel", Duration: 20 * time.Millisecond,
		Result: primes.Result{Count: 10, Sum: 129},
	}
	sequential := orchestration.RunResult{
		Name: "Sequential", Mode: "sequential", Duration: 10 * time.Millisecond,
		Result: primes.Result{Count: 10, Sum: 129},
	}

	t.Run("agreement presents every run in order", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		presenter := mocks.NewMockResultPresenter(ctrl)
		opts := orchestration.PresentationOptions{Limit: 30}
		gomock.InOrder(
			presenter.EXPECT().PresentResult(parallel, opts, gomock.Any()),
			presenter.EXPECT().PresentResult(sequential, opts, gomock.Any()),
		)

		code := orchestration.AnalyzeComparisonResults(
			[]orchestration.RunResult{parallel, sequential}, opts, presenter, &bytes.Buffer{})
		if code != apperrors.ExitSuccess {
			t.Errorf("exit code = %d, want %d", code, apperrors.ExitSuccess)
		}
	})

	t.Run("verbose adds a table sorted by duration", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		presenter := mocks.NewMockResultPresenter(ctrl)
		opts := orchestration.PresentationOptions{Limit: 30, Verbose: true}
		presenter.EXPECT().PresentResult(gomock.Any(), opts, gomock.Any()).Times(2)
		presenter.EXPECT().PresentComparisonTable(
			[]orchestration.RunResult{sequential, parallel}, gomock.Any())

		var out bytes.Buffer
		code := orchestration.AnalyzeComparisonResults(
			[]orchestration.RunResult{parallel, sequential}, opts, presenter, &out)
		if code != apperrors.ExitSuccess {
			t.Errorf("exit code = %d", code)
		}
		if !bytes.Contains(out.Bytes(), []byte("Global Status: Success")) {
			t.Errorf("missing status line in %q", out.String())
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		presenter := mocks.NewMockResultPresenter(ctrl)
		bad := sequential
		bad.Result.Sum = 128
		presenter.EXPECT().PresentResult(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
		presenter.EXPECT().
			HandleError(apperrors.MismatchError{Field: "sum", Want: 129, Got: 128}, time.Duration(0), gomock.Any()).
			Return(apperrors.ExitErrorMismatch)

		code := orchestration.AnalyzeComparisonResults(
			[]orchestration.RunResult{parallel, bad}, orchestration.PresentationOptions{}, presenter, &bytes.Buffer{})
		if code != apperrors.ExitErrorMismatch {
			t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorMismatch)
		}
	})

	t.Run("failed run is fatal and nothing is presented", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		presenter := mocks.NewMockResultPresenter(ctrl)
		failed := orchestration.RunResult{
			Name: "Parallel (8 workers)", Duration: time.Millisecond,
			Err: apperrors.WorkerError{Worker: 3, Cause: errors.New("panic: boom")},
		}
		presenter.EXPECT().HandleError(failed.Err, failed.Duration, gomock.Any()).Return(apperrors.ExitErrorWorker)

		code := orchestration.AnalyzeComparisonResults(
			[]orchestration.RunResult{failed}, orchestration.PresentationOptions{}, presenter, &bytes.Buffer{})
		if code != apperrors.ExitErrorWorker {
			t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorWorker)
		}
	})

	t.Run("no results", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		presenter := mocks.NewMockResultPresenter(ctrl)
		presenter.EXPECT().HandleError(gomock.Any(), gomock.Any(), gomock.Any()).Return(apperrors.ExitErrorGeneric)

		code := orchestration.AnalyzeComparisonResults(nil, orchestration.PresentationOptions{}, presenter, &bytes.Buffer{})
		if code != apperrors.ExitErrorGeneric {
			t.Errorf("exit code = %d", code)
		}
	})
}
