package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DanRulev/conceptbot/internal/models"
	mock_repository "github.com/DanRulev/conceptbot/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockQuery(ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *mock_repository.MockQueryI {
	db := mock_repository.NewMockQueryI(ctrl)
	db.EXPECT().Rebind(gomock.Any()).DoAndReturn(func(q string) string { return q }).AnyTimes()
	if setupMock != nil {
		setupMock(db)
	}
	return db
}

func newQuizMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *QuizR {
	return &QuizR{db: newMockQuery(ctrl, setupMock)}
}

func TestQuizR_AddQuizResult(t *testing.T) {
	t.Parallel()

	type args struct {
		ctx    context.Context
		userID int64
		score  int
		total  int
	}
	tests := []struct {
		name    string
		args    args
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				score:  3,
				total:  5,
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), int64(1), 3, 5, gomock.Any()).Return(nil, nil)
			},
			wantErr: false,
		},
		{
			name: "failed exec",
			args: args{
				ctx:    context.Background(),
				userID: 1,
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizR := newQuizMock(t, ctrl, tt.f)

			err := quizR.AddQuizResult(tt.args.ctx, tt.args.userID, tt.args.score, tt.args.total, time.Now())
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestQuizR_QuizHistory(t *testing.T) {
	t.Parallel()

	history := []models.QuizResult{
		{ID: 2, UserID: 1, Score: 4, TotalQuestions: 5},
		{ID: 1, UserID: 1, Score: 2, TotalQuestions: 5},
	}

	type args struct {
		ctx    context.Context
		userID int64
		limit  int
	}
	tests := []struct {
		name    string
		args    args
		f       func(*mock_repository.MockQueryI)
		want    []models.QuizResult
		wantErr bool
	}{
		{
			name: "success",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				limit:  5,
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), int64(1), 5).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*[]models.QuizResult) = history
						return nil
					})
			},
			want:    history,
			wantErr: false,
		},
		{
			name: "zero limit skips query",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				limit:  0,
			},
			want:    []models.QuizResult{},
			wantErr: false,
		},
		{
			name: "db error",
			args: args{
				ctx:    context.Background(),
				userID: 1,
				limit:  5,
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizR := newQuizMock(t, ctrl, tt.f)

			got, err := quizR.QuizHistory(tt.args.ctx, tt.args.userID, tt.args.limit)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
