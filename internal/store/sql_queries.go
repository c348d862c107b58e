package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-nutri-track/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	usersTable = "users"
	goalsTable = "daily_intake_goals"
)

var (
	userColumns      = []string{"user_id", "login", "password_hash", "created_at"}
	foodEntryColumns = []string{"id", "user_id", "calories", "protein", "carbs", "fat", "description", "image_ref", "created_at", "updated_at"}
	goalsColumns     = []string{"calories", "protein", "carbs", "fat"}
)

func returning(columns []string) string {
	s := "RETURNING "
	for i, c := range columns {
		if i > 0 {
			s += ", "
		}
		s += c
	}
	return s
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(usersTable).
		Columns("login", "password_hash").
		Values(user.Login, user.PasswordHash).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildFindUserByLoginQuery(login string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"login": login}).
		ToSql()
}

// ── food entries ──────────────────────────────────────────────────────────────

func buildCreateFoodEntryQuery(entry models.FoodEntry) (string, []any, error) {
	return psql.Insert(entry.TableName()).
		Columns("user_id", "calories", "protein", "carbs", "fat", "description", "image_ref").
		Values(entry.UserID, entry.Calories, entry.Protein, entry.Carbs, entry.Fat, entry.Description, entry.ImageRef).
		Suffix(returning(foodEntryColumns)).
		ToSql()
}

func buildUpdateFoodEntryQuery(entry models.FoodEntry) (string, []any, error) {
	query := psql.Update(entry.TableName()).
		Set("calories", entry.Calories).
		Set("protein", entry.Protein).
		Set("carbs", entry.Carbs).
		Set("fat", entry.Fat).
		Set("description", entry.Description)

	if entry.ImageRef != "" {
		query = query.Set("image_ref", entry.ImageRef)
	}

	return query.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": entry.ID}).
		Where(sq.Eq{"user_id": entry.UserID}).
		Suffix(returning(foodEntryColumns)).
		ToSql()
}

func buildGetFoodEntryQuery(userID, id int64) (string, []any, error) {
	return psql.Select(foodEntryColumns...).
		From(models.FoodEntry{}.TableName()).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildListFoodEntriesQuery(userID int64, start, end time.Time) (string, []any, error) {
	return psql.Select(foodEntryColumns...).
		From(models.FoodEntry{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"created_at": start}).
		Where(sq.Lt{"created_at": end}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

func buildDeleteFoodEntryQuery(userID, id int64) (string, []any, error) {
	return psql.Delete(models.FoodEntry{}.TableName()).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}).
		Suffix(returning(foodEntryColumns)).
		ToSql()
}

// ── goals ─────────────────────────────────────────────────────────────────────

func buildGetGoalsQuery(userID int64) (string, []any, error) {
	return psql.Select(goalsColumns...).
		From(goalsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpsertGoalsQuery(userID int64, goals models.DailyIntakeGoals) (string, []any, error) {
	return psql.Insert(goalsTable).
		Columns("user_id", "calories", "protein", "carbs", "fat").
		Values(userID, goals.Calories, goals.Protein, goals.Carbs, goals.Fat).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			calories = EXCLUDED.calories,
			protein = EXCLUDED.protein,
			carbs = EXCLUDED.carbs,
			fat = EXCLUDED.fat,
			updated_at = NOW() ` + returning(goalsColumns)).
		ToSql()
}
