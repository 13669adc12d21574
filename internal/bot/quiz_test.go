package bot

import (
	"context"
	"testing"

	mock_bot "github.com/DanRulev/conceptbot/internal/bot/mock"
	"github.com/DanRulev/conceptbot/internal/models"
	"github.com/DanRulev/conceptbot/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newQuizTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI, *mock_bot.MockBot)) (*QuizT, *mock_bot.MockBot) {
	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService, mockBot)
	}

	return NewQuizTAPI(mockBot, mockService, zap.NewNop()), mockBot
}

func testQuestion(index int) models.QuestionView {
	return models.QuestionView{
		SessionID: "3f1c",
		Index:     index,
		Total:     5,
		Prompt:    "Язык разметки",
		Options: []models.AnswerOption{
			{Label: "CSS", ConceptID: 2},
			{Label: "HTML", ConceptID: 1},
			{Label: "SQL", ConceptID: 9},
			{Label: "DOM", ConceptID: 6},
		},
	}
}

func callbackQuery(data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:   "cb-1",
		From: &tgbotapi.User{ID: 456},
		Message: &tgbotapi.Message{
			MessageID: 100,
			Chat:      &tgbotapi.Chat{ID: 123},
		},
		Data: data,
	}
}

func TestQuizT_startQuiz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		filter     string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name:   "success: sends first question",
			filter: "web",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartQuiz(gomock.Any(), int64(456), models.QuizFilter{Group: service.GroupWeb}).Return(testQuestion(0), nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.Callbacks(), 1)
				assert.Empty(t, mb.Callbacks()[0].Text)

				require.Len(t, mb.SentMessages, 1)
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, "Вопрос 1/5")
				assert.Contains(t, msg.Text, "Язык разметки")
				assert.Equal(t, tgbotapi.ModeMarkdown, msg.ParseMode)

				kb, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
				require.True(t, ok)
				require.Len(t, kb.InlineKeyboard, 4)
				assert.Equal(t, "HTML", kb.InlineKeyboard[1][0].Text)
				assert.Equal(t, "qa:3f1c:0:1", *kb.InlineKeyboard[1][0].CallbackData)
			},
		},
		{
			name:   "single category filter",
			filter: "cat:Tools",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartQuiz(gomock.Any(), int64(456), models.QuizFilter{Category: "Tools"}).Return(testQuestion(0), nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Len(t, mb.SentMessages, 1)
			},
		},
		{
			name:   "error: pool too small",
			filter: "python",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartQuiz(gomock.Any(), int64(456), gomock.Any()).Return(models.QuestionView{}, service.ErrInsufficientPool)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Empty(t, mb.SentMessages)
				require.Len(t, mb.Callbacks(), 1)
				assert.Equal(t, "❌ Недостаточно понятий для викторины (нужно минимум 4)", mb.Callbacks()[0].Text)
			},
		},
		{
			name:   "error: unknown filter",
			filter: "rust",
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Empty(t, mb.SentMessages)
				require.Len(t, mb.Callbacks(), 1)
				assert.Equal(t, "❌ Неизвестная категория", mb.Callbacks()[0].Text)
			},
		},
		{
			name:   "error: service failure",
			filter: "all",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartQuiz(gomock.Any(), int64(456), models.QuizFilter{}).Return(models.QuestionView{}, assert.AnError)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Empty(t, mb.SentMessages)
				require.Len(t, mb.Callbacks(), 1)
				assert.Equal(t, "❌ Ошибка при запуске викторины", mb.Callbacks()[0].Text)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT, mb := newQuizTMock(t, ctrl, tt.f)
			quizT.startQuiz(context.Background(), callbackQuery(prefixQuiz+tt.filter), tt.filter)

			tt.assertFunc(t, mb)
		})
	}
}

func TestQuizT_processAnswer(t *testing.T) {
	t.Parallel()

	answer := models.AnswerInput{SessionID: "3f1c", QuestionIndex: 0, SelectedID: 1}

	tests := []struct {
		name       string
		data       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "correct answer: toast and next question",
			data: "qa:3f1c:0:1",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), int64(456), answer).Return(models.AnswerOutcome{Correct: true, CorrectID: 1, CorrectTerm: "HTML"}, nil)
				next := testQuestion(1)
				ms.EXPECT().CurrentQuestion(gomock.Any(), int64(456)).Return(models.QuizStep{Question: &next}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				cbs := mb.Callbacks()
				require.Len(t, cbs, 1)
				assert.Equal(t, "✅ Правильно!", cbs[0].Text)
				assert.False(t, cbs[0].ShowAlert)

				require.Len(t, mb.Requests, 2)
				_, ok := mb.Requests[1].(tgbotapi.EditMessageReplyMarkupConfig)
				assert.True(t, ok, "answered keyboard is cleared")

				require.Len(t, mb.SentMessages, 1)
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "Вопрос 2/5")
			},
		},
		{
			name: "wrong answer: alert and summary",
			data: "qa:3f1c:4:9",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), int64(456), models.AnswerInput{SessionID: "3f1c", QuestionIndex: 4, SelectedID: 9}).
					Return(models.AnswerOutcome{Correct: false, CorrectID: 1, CorrectTerm: "HTML"}, nil)
				ms.EXPECT().CurrentQuestion(gomock.Any(), int64(456)).Return(models.QuizStep{
					Summary: &models.QuizSummary{Score: 2, Total: 3, Percentage: 66, Tier: models.TierGood},
				}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				cbs := mb.Callbacks()
				require.Len(t, cbs, 1)
				assert.Equal(t, "❌ Неверно! Правильный ответ: HTML", cbs[0].Text)
				assert.True(t, cbs[0].ShowAlert)

				require.Len(t, mb.SentMessages, 1)
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "Правильных ответов: 2/3")
				assert.Contains(t, msg.Text, "Результат: 66%")
				assert.Contains(t, msg.Text, "Хороший результат!")
			},
		},
		{
			name: "no session: silently ignored",
			data: "qa:3f1c:0:1",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), int64(456), answer).Return(models.AnswerOutcome{}, service.ErrNoSession)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Empty(t, mb.SentMessages)
				require.Len(t, mb.Requests, 1)
				assert.Empty(t, mb.Callbacks()[0].Text)
			},
		},
		{
			name: "stale answer",
			data: "qa:3f1c:0:1",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), int64(456), answer).Return(models.AnswerOutcome{}, service.ErrStaleAnswer)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Empty(t, mb.SentMessages)
				require.Len(t, mb.Callbacks(), 1)
				assert.Equal(t, "⌛ Этот вопрос уже неактуален", mb.Callbacks()[0].Text)
			},
		},
		{
			name: "malformed data",
			data: "qa:broken",
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Empty(t, mb.SentMessages)
				assert.Len(t, mb.Callbacks(), 1)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT, mb := newQuizTMock(t, ctrl, tt.f)
			quizT.processAnswer(context.Background(), callbackQuery(tt.data))

			tt.assertFunc(t, mb)
		})
	}
}

func Test_parseAnswerData(t *testing.T) {
	t.Parallel()

	view := models.QuestionView{SessionID: "0b9e7c2a-5d1f-4f43-9d55-1c2d3e4f5a6b", Index: 3}

	tests := []struct {
		name    string
		data    string
		want    models.AnswerInput
		wantErr bool
	}{
		{
			name: "round trip",
			data: answerData(view, 42),
			want: models.AnswerInput{SessionID: view.SessionID, QuestionIndex: 3, SelectedID: 42},
		},
		{name: "missing parts", data: "qa:abc:1", wantErr: true},
		{name: "bad index", data: "qa:abc:x:1", wantErr: true},
		{name: "bad id", data: "qa:abc:1:x", wantErr: true},
		{name: "empty session", data: "qa::1:2", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseAnswerData(tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(tt.data), 64, "telegram callback data limit")
		})
	}
}
