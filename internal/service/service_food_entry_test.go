package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/imaging"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/internal/mock"
	"github.com/MKhiriev/go-nutri-track/internal/store"
	"github.com/MKhiriev/go-nutri-track/internal/validators"
	"github.com/MKhiriev/go-nutri-track/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// pngBytes returns a solid-colour PNG of the given size.
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 150, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type foodEntryMocks struct {
	repo  *mock.MockFoodEntryRepository
	blobs *mock.MockBlobStorage
	keys  *mock.MockBlobKeyGenerator
}

var fixedNow = time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)

func newTestFoodEntryService(t *testing.T) (FoodEntryService, foodEntryMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := foodEntryMocks{
		repo:  mock.NewMockFoodEntryRepository(ctrl),
		blobs: mock.NewMockBlobStorage(ctrl),
		keys:  mock.NewMockBlobKeyGenerator(ctrl),
	}

	svc := NewFoodEntryService(m.repo, m.blobs, m.keys, logger.Nop()).(*foodEntryService)
	svc.now = func() time.Time { return fixedNow }

	return NewFoodEntryValidationService().Wrap(svc), m
}

// ── Save ────────────────────────────────────────────────────────────────────

func TestFoodEntryService_Save_WithoutImage(t *testing.T) {
	svc, m := newTestFoodEntryService(t)

	req := models.FoodEntryRequest{Calories: 250, Protein: 10, Carbs: 30, Fat: 8, Description: "yogurt"}

	m.repo.EXPECT().
		CreateFoodEntry(gomock.Any(), req.ToEntry(7)).
		Return(models.FoodEntry{ID: 1, UserID: 7, Calories: 250, Protein: 10, Carbs: 30, Fat: 8, Description: "yogurt"}, nil)

	got, err := svc.Save(context.Background(), 7, req)

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Empty(t, got.ImageURL)
}

func TestFoodEntryService_Save_UploadsBeforeWriting(t *testing.T) {
	svc, m := newTestFoodEntryService(t)

	req := models.FoodEntryRequest{
		Calories:    400,
		Protein:     20,
		Carbs:       50,
		Fat:         12,
		Description: "burrito",
		ImageData:   imaging.EncodeDataURI("image/png", pngBytes(t, 1600, 900)),
	}
	key := "users/7/2026/05/04/abc.jpg"

	gomock.InOrder(
		m.keys.EXPECT().Generate().Return("abc"),
		m.blobs.EXPECT().
			Upload(gomock.Any(), key, gomock.Any(), imaging.MIMEType).
			DoAndReturn(func(_ context.Context, key string, data []byte, _ string) (string, error) {
				cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
				require.NoError(t, err)
				assert.Equal(t, "jpeg", format)
				assert.Equal(t, 800, cfg.Width)
				assert.Equal(t, 450, cfg.Height)
				return key, nil
			}),
		m.repo.EXPECT().
			CreateFoodEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry models.FoodEntry) (models.FoodEntry, error) {
				assert.Equal(t, key, entry.ImageRef)
				entry.ID = 3
				return entry, nil
			}),
		m.blobs.EXPECT().PublicURL(key).Return("https://cdn.example.com/"+key),
	)

	got, err := svc.Save(context.Background(), 7, req)

	require.NoError(t, err)
	assert.Equal(t, key, got.ImageRef)
	assert.Equal(t, "https://cdn.example.com/"+key, got.ImageURL)
}

func TestFoodEntryService_Save_UploadFailureWritesNoRecord(t *testing.T) {
	svc, m := newTestFoodEntryService(t)

	m.keys.EXPECT().Generate().Return("abc")
	m.blobs.EXPECT().
		Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", store.ErrUploadFailed)

	_, err := svc.Save(context.Background(), 7, models.FoodEntryRequest{
		Calories:  100,
		ImageData: imaging.EncodeDataURI("image/png", pngBytes(t, 10, 10)),
	})

	assert.ErrorIs(t, err, ErrUpload)
	assert.ErrorIs(t, err, store.ErrUploadFailed)
}

func TestFoodEntryService_Save_RepositoryFailureRemovesBlob(t *testing.T) {
	svc, m := newTestFoodEntryService(t)

	dbErr := errors.New("connection reset")

	m.keys.EXPECT().Generate().Return("abc")
	m.blobs.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("users/7/2026/05/04/abc.jpg", nil)
	m.repo.EXPECT().CreateFoodEntry(gomock.Any(), gomock.Any()).Return(models.FoodEntry{}, dbErr)
	m.blobs.EXPECT().Delete(gomock.Any(), "users/7/2026/05/04/abc.jpg").Return(nil)

	_, err := svc.Save(context.Background(), 7, models.FoodEntryRequest{
		Calories:  100,
		ImageData: imaging.EncodeDataURI("image/png", pngBytes(t, 10, 10)),
	})

	assert.ErrorIs(t, err, ErrRepository)
	assert.ErrorIs(t, err, dbErr)
}

func TestFoodEntryService_Save_ValidationMakesNoCalls(t *testing.T) {
	svc, _ := newTestFoodEntryService(t)

	tests := []struct {
		name   string
		userID int64
		req    models.FoodEntryRequest
		want   error
	}{
		{name: "negative calories", userID: 7, req: models.FoodEntryRequest{Calories: -1}, want: validators.ErrNegativeNutrient},
		{name: "negative fat", userID: 7, req: models.FoodEntryRequest{Fat: -3}, want: validators.ErrNegativeNutrient},
		{name: "no user", userID: 0, req: models.FoodEntryRequest{Calories: 1}, want: validators.ErrInvalidUserID},
		{name: "not an image", userID: 7, req: models.FoodEntryRequest{ImageData: "data:text/plain;base64,aGk="}, want: validators.ErrInvalidImageData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Save(context.Background(), tt.userID, tt.req)
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFoodEntryService_Save_UndecodableImageIsValidationError(t *testing.T) {
	svc, _ := newTestFoodEntryService(t)

	_, err := svc.Save(context.Background(), 7, models.FoodEntryRequest{
		Calories:  1,
		ImageData: imaging.EncodeDataURI("image/png", []byte("definitely not a png")),
	})

	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, imaging.ErrDecode)
}

// ── Update ──────────────────────────────────────────────────────────────────

func TestFoodEntryService_Update_ReplacesImage(t *testing.T) {
	svc, m := newTestFoodEntryService(t)

	oldKey := "users/7/2026/05/01/old.jpg"
	newKey := "users/7/2026/05/04/new.jpg"

	gomock.InOrder(
		m.repo.EXPECT().GetFoodEntry(gomock.Any(), int64(7), int64(5)).Return(models.FoodEntry{ID: 5, UserID: 7, ImageRef: oldKey}, nil),
		m.keys.EXPECT().Generate().Return("new"),
		m.blobs.EXPECT().Upload(gomock.Any(), newKey, gomock.Any(), imaging.MIMEType).Return(newKey, nil),
		m.repo.EXPECT().
			UpdateFoodEntry(gomock.Any(), models.FoodEntry{ID: 5, UserID: 7, Calories: 10, Description: "tea", ImageRef: newKey}).
			Return(models.FoodEntry{ID: 5, UserID: 7, Calories: 10, Description: "tea", ImageRef: newKey}, nil),
		m.blobs.EXPECT().Delete(gomock.Any(), oldKey).Return(nil),
		m.blobs.EXPECT().PublicURL(newKey).Return("/images/"+newKey),
	)

	got, err := svc.Update(context.Background(), 7, 5, models.FoodEntryRequest{
		Calories:    10,
		Description: "tea",
		ImageData:   imaging.EncodeDataURI("image/png", pngBytes(t, 20, 20)),
	})

	require.NoError(t, err)
	assert.Equal(t, "/images/"+newKey, got.ImageURL)
}

func TestFoodEntryService_Update_ForeignEntryIsNotFound(t *testing.T) {
	svc, m := newTestFoodEntryService(t)

	m.repo.EXPECT().GetFoodEntry(gomock.Any(), int64(7), int64(99)).Return(models.FoodEntry{}, store.ErrFoodEntryNotFound)

	_, err := svc.Update(context.Background(), 7, 99, models.FoodEntryRequest{Calories: 1, ImageData: imaging.EncodeDataURI("image/png", pngBytes(t, 4, 4))})

	assert.ErrorIs(t, err, store.ErrFoodEntryNotFound)
}

func TestFoodEntryService_Update_InvalidID(t *testing.T) {
	svc, _ := newTestFoodEntryService(t)

	_, err := svc.Update(context.Background(), 7, 0, models.FoodEntryRequest{Calories: 1})

	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrInvalidEntryID)
}

// ── List / Get / Delete ─────────────────────────────────────────────────────

func TestFoodEntryService_List_FillsImageURLs(t *testing.T) {
	svc, m := newTestFoodEntryService(t)

	day := models.NewDayRange(fixedNow)
	m.repo.EXPECT().ListFoodEntries(gomock.Any(), int64(7), day).Return([]models.FoodEntry{
		{ID: 1, ImageRef: "a.jpg"},
		{ID: 2},
	}, nil)
	m.blobs.EXPECT().PublicURL("a.jpg").Return("https://cdn/a.jpg")

	got, err := svc.List(context.Background(), 7, day)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "https://cdn/a.jpg", got[0].ImageURL)
	assert.Empty(t, got[1].ImageURL)
}

func TestFoodEntryService_List_RangeTooLong(t *testing.T) {
	svc, _ := newTestFoodEntryService(t)

	_, err := svc.List(context.Background(), 7, models.DateRange{From: fixedNow.AddDate(-1, 0, 0), To: fixedNow})

	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrDateRangeTooLong)
}

func TestFoodEntryService_Get_NotFound(t *testing.T) {
	svc, m := newTestFoodEntryService(t)

	m.repo.EXPECT().GetFoodEntry(gomock.Any(), int64(7), int64(3)).Return(models.FoodEntry{}, store.ErrFoodEntryNotFound)

	_, err := svc.Get(context.Background(), 7, 3)

	assert.ErrorIs(t, err, store.ErrFoodEntryNotFound)
	assert.ErrorIs(t, err, ErrRepository)
}

func TestFoodEntryService_Delete_RemovesImageBestEffort(t *testing.T) {
	svc, m := newTestFoodEntryService(t)

	m.repo.EXPECT().DeleteFoodEntry(gomock.Any(), int64(7), int64(3)).Return(models.FoodEntry{ID: 3, ImageRef: "k.jpg"}, nil)
	m.blobs.EXPECT().Delete(gomock.Any(), "k.jpg").Return(errors.New("s3 unavailable"))

	assert.NoError(t, svc.Delete(context.Background(), 7, 3))
}
