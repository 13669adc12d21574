package bot

import (
	"context"
	"testing"

	mock_bot "github.com/DanRulev/conceptbot/internal/bot/mock"
	"github.com/DanRulev/conceptbot/internal/models"
	"github.com/DanRulev/conceptbot/internal/repository"
	"github.com/DanRulev/conceptbot/internal/service"
	"github.com/DanRulev/conceptbot/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminT_wizard(t *testing.T) {
	t.Parallel()

	stored := models.Concept{ID: 3, Term: "GIT", Definition: "Система контроля версий", Category: "Tools", Example: "git commit"}

	tests := []struct {
		name       string
		userID     int64
		steps      []string
		f          func(*mock_bot.MockServiceI)
		assertFunc func(*testing.T, *mock_bot.MockBot, *cache.Cache)
	}{
		{
			name:   "add with defaults",
			userID: adminID,
			steps:  []string{ButtonAdd, "git", "Система контроля версий", "Пропустить", "пропустить"},
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().AddConcept(gomock.Any(), models.Concept{
					Term:       "GIT",
					Definition: "Система контроля версий",
					Category:   models.DefaultCategory,
				}).Return(true, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				assert.Equal(t, "✅ Понятие 'GIT' успешно добавлено!", lastText(t, mb))
				_, ok := c.GetInput(adminID)
				assert.False(t, ok)
			},
		},
		{
			name:   "add duplicate",
			userID: adminID,
			steps:  []string{ButtonAdd, "git", "VCS", "Tools", "git init"},
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().AddConcept(gomock.Any(), models.Concept{
					Term: "GIT", Definition: "VCS", Category: "Tools", Example: "git init",
				}).Return(false, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, _ *cache.Cache) {
				assert.Equal(t, "❌ Понятие 'GIT' уже существует!", lastText(t, mb))
			},
		},
		{
			name:   "empty term asks again",
			userID: adminID,
			steps:  []string{ButtonAdd, "пропустить"},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				assert.Contains(t, lastText(t, mb), "Термин не может быть пустым")
				input, ok := c.GetInput(adminID)
				require.True(t, ok)
				assert.Equal(t, models.InputTerm, input.Kind)
			},
		},
		{
			name:   "edit keeps skipped fields",
			userID: adminID,
			steps:  []string{ButtonEdit, "3", "пропустить", "пропустить", "DevOps", "пропустить"},
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().ConceptByID(gomock.Any(), int64(3)).Return(stored, nil)
				want := stored
				want.Category = "DevOps"
				ms.EXPECT().UpdateConcept(gomock.Any(), want).Return(true, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, _ *cache.Cache) {
				assert.Equal(t, "✅ Понятие 'GIT' обновлено!", lastText(t, mb))
			},
		},
		{
			name:   "edit missing concept",
			userID: adminID,
			steps:  []string{ButtonEdit, "99"},
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().ConceptByID(gomock.Any(), int64(99)).Return(models.Concept{}, repository.ErrNotFound)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				assert.Equal(t, "❌ Понятие #99 не найдено", lastText(t, mb))
				_, ok := c.GetInput(adminID)
				assert.False(t, ok)
			},
		},
		{
			name:   "edit non-numeric id",
			userID: adminID,
			steps:  []string{ButtonEdit, "abc"},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				assert.Contains(t, lastText(t, mb), "Нужен числовой ID")
				input, ok := c.GetInput(adminID)
				require.True(t, ok)
				assert.Equal(t, models.InputEditID, input.Kind)
			},
		},
		{
			name:   "delete",
			userID: adminID,
			steps:  []string{ButtonDelete, "3"},
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().DeleteConcept(gomock.Any(), int64(3)).Return(true, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, _ *cache.Cache) {
				assert.Equal(t, "✅ Понятие #3 удалено", lastText(t, mb))
			},
		},
		{
			name:   "delete missing",
			userID: adminID,
			steps:  []string{ButtonDelete, "9"},
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().DeleteConcept(gomock.Any(), int64(9)).Return(false, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, _ *cache.Cache) {
				assert.Equal(t, "❌ Понятие #9 не найдено", lastText(t, mb))
			},
		},
		{
			name:   "list",
			userID: adminID,
			steps:  []string{ButtonList},
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().ListConcepts(gomock.Any()).Return(serviceList(stored, 25), nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, _ *cache.Cache) {
				text := lastText(t, mb)
				assert.Contains(t, text, "Все понятия (25)")
				assert.Contains(t, text, "1. *GIT* (#3) - Tools")
				assert.Contains(t, text, "... и ещё 24 понятий")
			},
		},
		{
			name:   "non-admin cannot add",
			userID: 456,
			steps:  []string{ButtonAdd, "git"},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				require.Len(t, mb.SentMessages, 2)
				assert.Equal(t, "❌ У вас нет прав администратора", mb.SentMessages[0].(tgbotapi.MessageConfig).Text)
				assert.Equal(t, "Я не понял. Используй кнопки ниже.", lastText(t, mb))
				_, ok := c.GetInput(456)
				assert.False(t, ok)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api, mb, c := newTelegramMock(t, ctrl, tt.f)
			for _, step := range tt.steps {
				api.handleMessage(context.Background(), textMessage(tt.userID, step))
			}

			tt.assertFunc(t, mb, c)
		})
	}
}

func serviceList(first models.Concept, total int) service.ConceptList {
	return service.ConceptList{Concepts: []models.Concept{first}, Total: total}
}

func TestAdminT_staleInputFromNonAdmin(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api, mb, c := newTelegramMock(t, ctrl, nil)
	c.SetInput(456, models.PendingInput{Kind: models.InputDeleteID})

	api.handleMessage(context.Background(), textMessage(456, "3"))

	assert.Empty(t, mb.SentMessages)
	_, ok := c.GetInput(456)
	assert.False(t, ok)
}
