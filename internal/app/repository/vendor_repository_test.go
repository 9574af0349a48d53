package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpo-services/helpo-backend/internal/app/model"
	"github.com/helpo-services/helpo-backend/internal/sheets"
)

const testVendorTab = "Helpovendor"

func setupVendorRepoTest(t *testing.T) (*VendorRepository, *sheets.FakeStore) {
	t.Helper()

	store := sheets.NewFakeStore()
	store.AddTab(testVendorTab, model.VendorColumns)
	return NewVendorRepository(store, testVendorTab), store
}

func testVendor(phone string) model.Vendor {
	return model.Vendor{
		BusinessName: "Home Cleaning Pros",
		Pincode:      "110001",
		City:         "Delhi",
		State:        "Delhi",
		PlotInfo:     "12",
		BuildingInfo: "Tower A",
		Street:       "MG Road",
		Landmark:     "Near Metro",
		Area:         "Connaught Place",
		Category:     "Cleaning",
		Phone:        phone,
		Photos:       "front.jpg",
		Description:  "Deep cleaning for homes and offices",
		ServiceHours: "9am-6pm",
		Email:        "owner@cleaningpros.in",
		PasswordHash: "$2a$12$examplehash",
	}
}

func seedVendor(store *sheets.FakeStore, v model.Vendor) {
	store.SeedRow(testVendorTab, v.Row(time.Now()))
}

func TestVendorRepository_CreateAndList(t *testing.T) {
	repo, store := setupVendorRepoTest(t)
	ctx := context.Background()

	v := testVendor("9876543210")
	require.NoError(t, repo.Create(ctx, &v))

	vendors, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, "Home Cleaning Pros", vendors[0].BusinessName)
	assert.Equal(t, "9876543210", vendors[0].Phone)
	assert.Equal(t, model.DefaultSubscription, vendors[0].Subscription)
	assert.NotEmpty(t, vendors[0].CreatedAt)

	// The confirm_password cell is written empty
	rows := store.Rows(testVendorTab)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0][16])
	assert.Equal(t, "$2a$12$examplehash", rows[0][15])
}

func TestVendorRepository_Create_DuplicatePhone(t *testing.T) {
	repo, store := setupVendorRepoTest(t)
	ctx := context.Background()

	seedVendor(store, testVendor("9876543210"))

	dup := testVendor("9876543210")
	err := repo.Create(ctx, &dup)
	assert.ErrorIs(t, err, ErrDuplicatePhone)

	assert.Len(t, store.Rows(testVendorTab), 1)
}

func TestVendorRepository_FindByPhone(t *testing.T) {
	repo, store := setupVendorRepoTest(t)
	ctx := context.Background()

	v := testVendor(" 9876543210 ")
	seedVendor(store, v)

	// Lookup trims both sides
	found, err := repo.FindByPhone(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, v.BusinessName, found.BusinessName)

	_, err = repo.FindByPhone(ctx, "9123456789")
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestVendorRepository_FindByEmail(t *testing.T) {
	repo, store := setupVendorRepoTest(t)
	ctx := context.Background()

	seedVendor(store, testVendor("9876543210"))

	found, err := repo.FindByEmail(ctx, "OWNER@CleaningPros.IN")
	require.NoError(t, err)
	assert.Equal(t, "9876543210", found.Phone)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestVendorRepository_Update_FieldsAndPhotos(t *testing.T) {
	repo, store := setupVendorRepoTest(t)
	ctx := context.Background()

	v := testVendor("9876543210")
	v.Photos = "a.jpg,b.jpg"
	seedVendor(store, v)
	seedVendor(store, testVendor("9123456789"))

	err := repo.Update(ctx, "9876543210",
		map[string]string{model.ColDescription: "Updated description"},
		[]string{"c.jpg"},
		[]string{"a.jpg"},
	)
	require.NoError(t, err)

	updated, err := repo.FindByPhone(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "Updated description", updated.Description)
	assert.Equal(t, []string{"b.jpg", "c.jpg"}, updated.PhotoList())

	// The other row is untouched
	other, err := repo.FindByPhone(ctx, "9123456789")
	require.NoError(t, err)
	assert.Equal(t, "Deep cleaning for homes and offices", other.Description)
}

func TestVendorRepository_Update_NotFound(t *testing.T) {
	repo, store := setupVendorRepoTest(t)
	ctx := context.Background()

	seedVendor(store, testVendor("9876543210"))
	before := store.Rows(testVendorTab)[0]

	err := repo.Update(ctx, "9999999999", map[string]string{model.ColCity: "Mumbai"}, nil, nil)
	assert.ErrorIs(t, err, ErrVendorNotFound)

	// Nothing written
	assert.Equal(t, before, store.Rows(testVendorTab)[0])
}

func TestVendorRepository_UpdateSubscription(t *testing.T) {
	repo, store := setupVendorRepoTest(t)
	ctx := context.Background()

	seedVendor(store, testVendor("9876543210"))

	require.NoError(t, repo.UpdateSubscription(ctx, "9876543210", "Premium"))

	v, err := repo.FindByPhone(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "Premium", v.Subscription)
}

func TestVendorRepository_UpdatePasswordByEmail(t *testing.T) {
	repo, store := setupVendorRepoTest(t)
	ctx := context.Background()

	seedVendor(store, testVendor("9876543210"))

	require.NoError(t, repo.UpdatePasswordByEmail(ctx, "owner@cleaningpros.in", "$2a$12$newhash"))

	v, err := repo.FindByPhone(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "$2a$12$newhash", v.PasswordHash)
}

func TestVendorRepository_StoreUnavailable(t *testing.T) {
	store := sheets.NewFakeStore()
	store.OpenErr = sheets.ErrConnection
	repo := NewVendorRepository(store, testVendorTab)

	_, err := repo.ListAll(context.Background())
	assert.ErrorIs(t, err, sheets.ErrConnection)
}

func TestVendorRepository_WriteFailure(t *testing.T) {
	repo, store := setupVendorRepoTest(t)
	ctx := context.Background()

	store.FailWrites(testVendorTab)

	v := testVendor("9876543210")
	err := repo.Create(ctx, &v)
	assert.ErrorIs(t, err, sheets.ErrWrite)
}
