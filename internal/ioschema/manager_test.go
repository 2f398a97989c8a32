package ioschema_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/winedb/internal/ioschema"
	"github.com/gnames/winedb/internal/ioseed"
	"github.com/gnames/winedb/internal/iotesting"
	"github.com/gnames/winedb/pkg/db"
	"github.com/gnames/winedb/pkg/errcode"
	"github.com/gnames/winedb/pkg/lifecycle"
	"github.com/gnames/winedb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wineTables = []string{
	"grapes", "families", "persons", "vineyards",
	"varieties", "wineries", "wines", "vintages",
}

func TestMigrations(t *testing.T) {
	op := iotesting.NewEmptyDB(t)
	migs := ioschema.NewManager(op).Migrations()
	require.Len(t, migs, 3)

	assert.Equal(t, "world", migs[0].Name())
	assert.Equal(t, []string{"countries", "regions", "cities"},
		migs[0].Tables())
	assert.Empty(t, migs[0].Dependencies())

	assert.Equal(t, "log", migs[1].Name())
	assert.Equal(t, []string{"logs"}, migs[1].Tables())
	assert.Empty(t, migs[1].Dependencies())

	assert.Equal(t, "wine", migs[2].Name())
	assert.Equal(t, wineTables, migs[2].Tables())
	assert.Equal(t, []string{"countries", "regions", "cities", "logs"},
		migs[2].Dependencies())
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	op := iotesting.NewEmptyDB(t)

	err := ioschema.NewManager(op).Create(ctx)
	require.NoError(t, err)

	tables, err := op.Tables(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, append([]string{
		"countries", "regions", "cities", "logs",
	}, wineTables...), tables)
}

func TestCreate_Columns(t *testing.T) {
	op := iotesting.NewMemoryDB(t)

	common := []string{"id", "key", "title", "synonyms",
		"created_at", "updated_at"}
	tests := []struct {
		model any
		cols  []string
	}{
		{&schema.Wine{}, append([]string{
			"winery_id", "variety_id", "web", "since", "txt", "txt_auto",
			"country_id", "region_id", "city_id", "vineyard_id",
		}, common...)},
		{&schema.Winery{}, append([]string{
			"address", "since", "closed", "area", "grade", "txt",
			"txt_auto", "web", "wikipedia", "country_id", "region_id",
			"city_id", "person_id",
		}, common...)},
		{&schema.Vintage{}, []string{
			"id", "year", "wine_id", "abv", "created_at", "updated_at",
		}},
		{&schema.Grape{}, append([]string{
			"red", "white", "wikipedia",
		}, common...)},
		{&schema.Family{}, common},
		{&schema.Variety{}, append([]string{
			"family_id", "cuvee", "varietal", "grape_id",
		}, common...)},
		{&schema.Vineyard{}, append([]string{
			"city_id", "area",
		}, common...)},
		{&schema.Person{}, []string{
			"id", "key", "name", "synonyms", "born_at", "city_id",
			"region_id", "country_id", "nationality_id",
			"created_at", "updated_at",
		}},
	}

	for _, v := range tests {
		cts, err := op.DB().Migrator().ColumnTypes(v.model)
		require.NoError(t, err)
		var cols []string
		for _, ct := range cts {
			cols = append(cols, ct.Name())
		}
		name := v.model.(schema.Tabler).TableName()
		assert.ElementsMatch(t, v.cols, cols, name)
	}
}

func TestCreate_Twice(t *testing.T) {
	ctx := context.Background()
	op := iotesting.NewMemoryDB(t)

	err := ioschema.NewManager(op).Create(ctx)
	gnErr := requireCode(t, err, errcode.SchemaConflictError)
	assert.Equal(t, []any{"world", "countries"}, gnErr.Vars)
	assert.ErrorIs(t, gnErr.Err, lifecycle.ErrSchemaConflict)

	err = ioschema.NewWineMigration(op).Up(ctx)
	gnErr = requireCode(t, err, errcode.SchemaConflictError)
	assert.Equal(t, []any{"wine", "grapes"}, gnErr.Vars)
}

func TestWineUp_PartialConflict(t *testing.T) {
	ctx := context.Background()
	op := worldAndLog(t)

	err := op.DB().Exec("CREATE TABLE vintages (id integer)").Error
	require.NoError(t, err)

	err = ioschema.NewWineMigration(op).Up(ctx)
	gnErr := requireCode(t, err, errcode.SchemaConflictError)
	assert.Equal(t, []any{"wine", "vintages"}, gnErr.Vars)

	assertNoTables(t, op, "grapes", "wines", "wineries")
}

func TestWineUp_MissingDependency(t *testing.T) {
	ctx := context.Background()
	op := iotesting.NewEmptyDB(t)
	wine := ioschema.NewWineMigration(op)

	err := wine.Up(ctx)
	gnErr := requireCode(t, err, errcode.SchemaMissingDependencyError)
	assert.Equal(t, []any{"wine", "countries"}, gnErr.Vars)
	assert.ErrorIs(t, gnErr.Err, lifecycle.ErrMissingDependency)

	err = ioschema.NewWorldMigration(op).Up(ctx)
	require.NoError(t, err)

	err = wine.Up(ctx)
	gnErr = requireCode(t, err, errcode.SchemaMissingDependencyError)
	assert.Equal(t, []any{"wine", "logs"}, gnErr.Vars)

	assertNoTables(t, op, wineTables...)
}

func TestRevert(t *testing.T) {
	ctx := context.Background()
	op := iotesting.NewMemoryDB(t)
	mgr := ioschema.NewManager(op)

	err := mgr.Revert(ctx)
	gnErr := requireCode(t, err, errcode.SchemaIrreversibleError)
	assert.Equal(t, []any{"wine"}, gnErr.Vars,
		"the last migration is reverted first")
	assert.ErrorIs(t, gnErr.Err, lifecycle.ErrIrreversible)

	for _, mig := range mgr.Migrations() {
		err = mig.Down(ctx)
		requireCode(t, err, errcode.SchemaIrreversibleError)
	}

	for _, table := range wineTables {
		exists, err := op.TableExists(ctx, table)
		require.NoError(t, err)
		assert.True(t, exists, table)
	}
}

func TestNotConnected(t *testing.T) {
	op := iotesting.NewEmptyDB(t)
	require.NoError(t, op.Close())

	err := ioschema.NewManager(op).Create(context.Background())
	requireCode(t, err, errcode.DBNotConnectedError)

	err = ioschema.NewWineMigration(op).Up(context.Background())
	requireCode(t, err, errcode.DBNotConnectedError)
}

func TestConstraints_Wine(t *testing.T) {
	ctx := context.Background()
	op := iotesting.NewMemoryDB(t)
	fx, err := ioseed.Seed(ctx, op.DB())
	require.NoError(t, err)
	now := time.Now()

	err = op.DB().Exec(
		`INSERT INTO wines ("key", title, created_at, updated_at)
		 VALUES (?, ?, ?, ?)`,
		"gruenerveltliner", "Grüner Veltliner", now, now,
	).Error
	assert.Error(t, err, "wine requires a country")

	wine := schema.Wine{Key: "gruenerveltliner", Title: "Grüner Veltliner"}
	err = op.DB().Omit("CountryID").Create(&wine).Error
	assert.Error(t, err, "wine requires a country")

	wine = schema.Wine{
		Key:       "gruenerveltliner",
		Title:     "Grüner Veltliner",
		CountryID: 9999,
	}
	err = op.DB().Create(&wine).Error
	assert.Error(t, err, "country must exist")

	wine = schema.Wine{
		Key:       "gruenerveltliner",
		Title:     "Grüner Veltliner",
		Synonyms:  schema.Synonyms{"GrüVe", "Weißgipfler"},
		CountryID: fx.Country.ID,
	}
	err = op.DB().Create(&wine).Error
	require.NoError(t, err, "other references are optional")

	var got schema.Wine
	err = op.DB().First(&got, wine.ID).Error
	require.NoError(t, err)
	assert.False(t, got.TxtAuto)
	assert.Nil(t, got.WineryID)
	assert.Nil(t, got.VarietyID)
	assert.Equal(t, schema.Synonyms{"GrüVe", "Weißgipfler"}, got.Synonyms)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestConstraints_Synonyms(t *testing.T) {
	ctx := context.Background()
	op := iotesting.NewMemoryDB(t)
	fx, err := ioseed.Seed(ctx, op.DB())
	require.NoError(t, err)

	wine := schema.Wine{
		Key:       "weissburgunder",
		Title:     "Weißburgunder",
		Synonyms:  schema.Synonyms{"Pinot Blanc, Klevner", ""},
		CountryID: fx.Country.ID,
	}
	err = op.DB().Create(&wine).Error
	assert.Error(t, err, "synonyms that cannot be read back are refused")

	var count int64
	require.NoError(t, op.DB().Model(&schema.Wine{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestConstraints_Winery(t *testing.T) {
	ctx := context.Background()
	op := iotesting.NewMemoryDB(t)
	fx, err := ioseed.Seed(ctx, op.DB())
	require.NoError(t, err)
	now := time.Now()

	err = op.DB().Exec(
		`INSERT INTO wineries ("key", title, country_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		"antonbauer", "Anton Bauer", fx.Country.ID, now, now,
	).Error
	require.NoError(t, err)

	var got schema.Winery
	err = op.DB().Where("key = ?", "antonbauer").First(&got).Error
	require.NoError(t, err)
	assert.Equal(t, schema.GradeDefault, got.Grade)
	assert.False(t, got.TxtAuto)

	winery := schema.Winery{Key: "ott", Title: "Bernhard Ott"}
	err = op.DB().Omit("CountryID").Create(&winery).Error
	assert.Error(t, err, "winery requires a country")

	winery = schema.Winery{
		Key:       "ott",
		Title:     "Bernhard Ott",
		CountryID: fx.Country.ID,
	}
	require.NoError(t, op.DB().Create(&winery).Error)

	got = schema.Winery{}
	require.NoError(t, op.DB().First(&got, winery.ID).Error)
	assert.Equal(t, schema.GradeDefault, got.Grade)
	stars, err := got.Grade.Stars()
	require.NoError(t, err)
	assert.Equal(t, "", stars)
}

func TestConstraints_Variety(t *testing.T) {
	op := iotesting.NewMemoryDB(t)
	gdb := op.DB()

	variety := schema.Variety{Key: "zweigelt", Title: "Zweigelt"}
	err := gdb.Omit("FamilyID").Create(&variety).Error
	assert.Error(t, err, "variety requires a family")

	family := schema.Family{Key: "red", Title: "Red"}
	require.NoError(t, gdb.Create(&family).Error)

	cuvee := schema.Variety{
		Key:      "cuvee",
		Title:    "Cuvée",
		FamilyID: family.ID,
		Cuvee:    true,
	}
	require.NoError(t, gdb.Create(&cuvee).Error, "grape is optional")

	grape := schema.Grape{Key: "zweigelt", Title: "Zweigelt", Red: true}
	require.NoError(t, gdb.Create(&grape).Error)

	varietal := schema.Variety{
		Key:      "zweigelt",
		Title:    "Zweigelt",
		FamilyID: family.ID,
		Varietal: true,
		GrapeID:  &grape.ID,
	}
	require.NoError(t, gdb.Create(&varietal).Error)

	var got schema.Variety
	err = gdb.Preload("Grape").First(&got, varietal.ID).Error
	require.NoError(t, err)
	assert.False(t, got.Cuvee)
	require.NotNil(t, got.Grape)
	assert.Equal(t, "Zweigelt", got.Grape.Title)

	var grapeGot schema.Grape
	require.NoError(t, gdb.First(&grapeGot, grape.ID).Error)
	assert.True(t, grapeGot.Red)
	assert.False(t, grapeGot.White)
}

func TestConstraints_VintageAndVineyard(t *testing.T) {
	ctx := context.Background()
	op := iotesting.NewMemoryDB(t)
	gdb := op.DB()
	fx, err := ioseed.Seed(ctx, gdb)
	require.NoError(t, err)

	vintage := schema.Vintage{Year: 2015}
	err = gdb.Omit("WineID").Create(&vintage).Error
	assert.Error(t, err, "vintage requires a wine")

	vineyard := schema.Vineyard{Key: "spiegel", Title: "Spiegel"}
	err = gdb.Omit("CityID").Create(&vineyard).Error
	assert.Error(t, err, "vineyard requires a city")

	city := schema.City{
		Key:       "feuersbrunn",
		Title:     "Feuersbrunn",
		CountryID: fx.Country.ID,
		RegionID:  &fx.Region.ID,
	}
	require.NoError(t, gdb.Create(&city).Error)

	area := 3
	vineyard = schema.Vineyard{
		Key:    "spiegel",
		Title:  "Spiegel",
		CityID: city.ID,
		Area:   &area,
	}
	require.NoError(t, gdb.Create(&vineyard).Error)

	wine := schema.Wine{
		Key:        "spiegel",
		Title:      "Grüner Veltliner Spiegel",
		CountryID:  fx.Country.ID,
		VineyardID: &vineyard.ID,
	}
	require.NoError(t, gdb.Create(&wine).Error)

	abv := 12.5
	vintage = schema.Vintage{Year: 2015, WineID: wine.ID, ABV: &abv}
	require.NoError(t, gdb.Create(&vintage).Error)

	var got schema.Vintage
	err = gdb.Preload("Wine").First(&got, vintage.ID).Error
	require.NoError(t, err)
	require.NotNil(t, got.ABV)
	assert.InDelta(t, 12.5, *got.ABV, 0.001)
	require.NotNil(t, got.Wine)
	assert.Equal(t, "spiegel", got.Wine.Key)
}

func TestConstraints_Person(t *testing.T) {
	ctx := context.Background()
	op := iotesting.NewMemoryDB(t)
	gdb := op.DB()
	fx, err := ioseed.Seed(ctx, gdb)
	require.NoError(t, err)

	born := time.Date(1971, 3, 1, 0, 0, 0, 0, time.UTC)
	person := schema.Person{
		Key:           "antonbauer",
		Name:          "Anton Bauer",
		BornAt:        &born,
		CountryID:     &fx.Country.ID,
		NationalityID: &fx.Country.ID,
	}
	require.NoError(t, gdb.Create(&person).Error)

	var got schema.Person
	err = gdb.Preload("Nationality").First(&got, person.ID).Error
	require.NoError(t, err)
	require.NotNil(t, got.Nationality)
	assert.Equal(t, "at", got.Nationality.Key)
	require.NotNil(t, got.BornAt)
	assert.Equal(t, 1971, got.BornAt.Year())
}

func worldAndLog(t *testing.T) db.Operator {
	t.Helper()
	ctx := context.Background()
	op := iotesting.NewEmptyDB(t)
	require.NoError(t, ioschema.NewWorldMigration(op).Up(ctx))
	require.NoError(t, ioschema.NewLogMigration(op).Up(ctx))
	return op
}

func assertNoTables(t *testing.T, op db.Operator, tables ...string) {
	t.Helper()
	for _, table := range tables {
		exists, err := op.TableExists(context.Background(), table)
		require.NoError(t, err)
		assert.False(t, exists, table)
	}
}

func requireCode(t *testing.T, err error, code gn.ErrorCode) *gn.Error {
	t.Helper()
	require.Error(t, err)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr),
		"Error should be of type *gn.Error")
	assert.Equal(t, code, gnErr.Code)
	return gnErr
}
