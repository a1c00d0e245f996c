package recommend

import (
	"SipMate-Backend/domain"
	"SipMate-Backend/entities"
	"context"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubRecommendRepository struct {
	prefs    map[string]*entities.TastePreference
	messages []entities.ChatMessage
}

func newStubRecommendRepository() *stubRecommendRepository {
	return &stubRecommendRepository{prefs: make(map[string]*entities.TastePreference)}
}

func (r *stubRecommendRepository) GetPreference(_ context.Context, userID string) (*entities.TastePreference, error) {
	pref, ok := r.prefs[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *pref
	return &copied, nil
}

func (r *stubRecommendRepository) UpsertPreference(_ context.Context, pref *entities.TastePreference) error {
	copied := *pref
	r.prefs[pref.UserID.String()] = &copied
	return nil
}

func (r *stubRecommendRepository) AppendChatMessage(_ context.Context, msg *entities.ChatMessage) error {
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *stubRecommendRepository) GetChatMessages(_ context.Context, userID string) ([]entities.ChatMessage, error) {
	out := make([]entities.ChatMessage, 0, len(r.messages))
	for _, m := range r.messages {
		if m.UserID.String() == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

type stubWineRepository struct {
	wines []entities.Wine
	saved map[string]bool
}

func (r *stubWineRepository) GetWines(_ context.Context) ([]entities.Wine, error) {
	return r.wines, nil
}

func (r *stubWineRepository) GetWineByID(_ context.Context, id string) (*entities.Wine, error) {
	for i := range r.wines {
		if r.wines[i].ID.String() == id {
			return &r.wines[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubWineRepository) GetSavedWineIDs(_ context.Context, _ string) (map[string]bool, error) {
	if r.saved == nil {
		return map[string]bool{}, nil
	}
	return r.saved, nil
}

type stubS3 struct{}

func (stubS3) UploadFile(string, *multipart.FileHeader, string, ...string) (string, error) {
	return "", nil
}
func (stubS3) UpdateFile(string, *multipart.FileHeader, ...string) (string, error) { return "", nil }
func (stubS3) DeleteFile(string) error                                             { return nil }
func (stubS3) GetPublicLinkKey(objectKey string) string                            { return "https://cdn.test/" + objectKey }
func (stubS3) GetObjectKeyFromLink(link string) string                             { return link }

func serviceCatalog() []entities.Wine {
	return []entities.Wine{
		{ID: uuid.New(), Name: "Budget Blanc", Type: "white", Price: fPtr(12), Rating: fPtr(4.0)},
		{ID: uuid.New(), Name: "Cellar Reserve", Type: "red", Price: fPtr(300), Rating: fPtr(4.7)},
		{ID: uuid.New(), Name: "Weeknight Red", Type: "red", Price: fPtr(20), Rating: fPtr(3.8)},
	}
}

func newTestService(wines []entities.Wine) (RecommendService, *stubRecommendRepository) {
	repo := newStubRecommendRepository()
	return NewRecommendService(repo, &stubWineRepository{wines: wines}, stubS3{}), repo
}

func TestToggleMoodSelectsAndClears(t *testing.T) {
	svc, _ := newTestService(serviceCatalog())
	userID := uuid.New().String()
	ctx := context.Background()

	res, err := svc.ToggleMood(ctx, userID, MoodCelebration)
	require.NoError(t, err)
	assert.Equal(t, MoodCelebration, res.Mood)

	// same label again clears the selection
	res, err = svc.ToggleMood(ctx, userID, MoodCelebration)
	require.NoError(t, err)
	assert.Empty(t, res.Mood)
}

func TestToggleMoodReplacesPrevious(t *testing.T) {
	svc, _ := newTestService(serviceCatalog())
	userID := uuid.New().String()
	ctx := context.Background()

	_, err := svc.ToggleMood(ctx, userID, MoodComfort)
	require.NoError(t, err)

	res, err := svc.ToggleMood(ctx, userID, MoodSummer)
	require.NoError(t, err)
	assert.Equal(t, MoodSummer, res.Mood)
}

func TestToggleMoodRejectsUnknownLabel(t *testing.T) {
	svc, _ := newTestService(serviceCatalog())

	_, err := svc.ToggleMood(context.Background(), uuid.New().String(), "Grumpy")
	assert.ErrorIs(t, err, domain.ErrUnknownMood)
}

func TestTogglePriceBandNarrowsRecommendations(t *testing.T) {
	svc, _ := newTestService(serviceCatalog())
	userID := uuid.New().String()
	ctx := context.Background()

	res, err := svc.TogglePriceBand(ctx, userID, BandBudget)
	require.NoError(t, err)
	assert.Equal(t, BandBudget, res.PriceBand)

	require.Len(t, res.Wines, 2)
	assert.Equal(t, "Budget Blanc", res.Wines[0].Name)
	assert.Equal(t, "Weeknight Red", res.Wines[1].Name)
}

func TestToggleSelectionsPersistAcrossCalls(t *testing.T) {
	svc, _ := newTestService(serviceCatalog())
	userID := uuid.New().String()
	ctx := context.Background()

	_, err := svc.ToggleMood(ctx, userID, MoodCelebration)
	require.NoError(t, err)
	_, err = svc.TogglePriceBand(ctx, userID, BandLuxury)
	require.NoError(t, err)

	res, err := svc.GetRecommendations(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, MoodCelebration, res.Mood)
	assert.Equal(t, BandLuxury, res.PriceBand)
	require.Len(t, res.Wines, 1)
	assert.Equal(t, "Cellar Reserve", res.Wines[0].Name)
}

func TestChatAppendsGreetingAndBothEntries(t *testing.T) {
	svc, repo := newTestService(serviceCatalog())
	userID := uuid.New().String()
	ctx := context.Background()

	res, err := svc.Chat(ctx, userID, "something cheap please")
	require.NoError(t, err)
	assert.Contains(t, res.Reply.Text, "budget-friendly")

	transcript, err := svc.GetTranscript(ctx, userID)
	require.NoError(t, err)
	require.Len(t, transcript, 3)
	assert.Equal(t, Greeting, transcript[0].Text)
	assert.False(t, transcript[0].IsUser)
	assert.Equal(t, "something cheap please", transcript[1].Text)
	assert.True(t, transcript[1].IsUser)
	assert.False(t, transcript[2].IsUser)

	// the side effect selected the budget band
	pref := repo.prefs[userID]
	require.NotNil(t, pref)
	assert.Equal(t, BandBudget, pref.PriceBand)
}

func TestChatRejectsWhitespaceWithoutTouchingTranscript(t *testing.T) {
	svc, repo := newTestService(serviceCatalog())

	_, err := svc.Chat(context.Background(), uuid.New().String(), "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyChatMessage)
	assert.Empty(t, repo.messages)
}

func TestGetTranscriptSeedsGreetingOnce(t *testing.T) {
	svc, _ := newTestService(serviceCatalog())
	userID := uuid.New().String()
	ctx := context.Background()

	first, err := svc.GetTranscript(ctx, userID)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, Greeting, first[0].Text)

	second, err := svc.GetTranscript(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestTaxonomyEndpointsMirrorTables(t *testing.T) {
	svc, _ := newTestService(nil)

	moods := svc.Moods()
	require.Len(t, moods, len(Moods))
	assert.Equal(t, MoodComfort, moods[0].Label)

	bands := svc.PriceBands()
	require.Len(t, bands, len(PriceBands))
	assert.Equal(t, BandBudget, bands[0].Label)
	assert.Equal(t, 30.0, bands[0].Max)
}
