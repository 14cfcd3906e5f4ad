package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"staybook/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// HistoryRow is one denormalized listing row: a request joined with
// zero-or-more assignment rows, so one request id may repeat.
type HistoryRow struct {
	ID          int64
	DateFrom    time.Time
	DateTo      time.Time
	Status      string
	Remarks     *string
	BookingType string
	Timestamp   time.Time
	ProcessedAt *time.Time

	UserID    int64
	UserName  string
	UserEmail string
	UserRole  string

	CityName string

	ApartmentName *string
	FlatName      *string
	RoomName      *string
	BedName       *string
	AssignedEmail *string
}

const historySelect = `
SELECT
  r.id,
  r.date_from,
  r.date_to,
  r.status,
  r.remarks,
  r.booking_type,
  r.timestamp,
  r.processed_at,
  u.id    AS user_id,
  u.name  AS user_name,
  u.email AS user_email,
  u.role  AS user_role,
  ci.name AS city_name,
  a.name  AS apartment_name,
  f.name  AS flat_name,
  ro.name AS room_name,
  b.name  AS bed_name,
  aa.user_email AS assigned_email
FROM requests r
LEFT JOIN users u ON u.id = r.user_id
LEFT JOIN cities ci ON ci.id = r.city_id
LEFT JOIN assigned_accommodations aa ON aa.request_id = r.id
LEFT JOIN apartments a ON a.id = aa.apartment_id
LEFT JOIN flats f ON f.id = aa.flat_id
LEFT JOIN rooms ro ON ro.id = aa.room_id
LEFT JOIN beds b ON b.id = aa.bed_id
`

// ListHistory runs the filtered listing join. Most recently processed
// first, unprocessed rows fall back to creation time.
func (r *RequestRepository) ListHistory(ctx context.Context, f RequestFilter) ([]HistoryRow, error) {
	where, args := whereClause(f.predicates())
	q := historySelect + where + `
ORDER BY r.processed_at DESC NULLS LAST, r.timestamp DESC`

	var rows []HistoryRow
	tx := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// FlatRequestRow is the un-aggregated staff-view row, one per request
// and assignment pair.
type FlatRequestRow struct {
	ID          int64
	StartTime   time.Time
	EndTime     time.Time
	Status      string
	Remarks     *string
	CreatedAt   time.Time
	ProcessedAt *time.Time
	CityID      int64

	ApartmentID *int64
	FlatID      *int64
	RoomID      *int64

	UserID    int64
	UserName  string
	UserEmail string
	UserRole  string
}

func (r *RequestRepository) ListFlat(ctx context.Context, status string) ([]FlatRequestRow, error) {
	q := `
SELECT
  r.id,
  r.date_from AS start_time,
  r.date_to   AS end_time,
  r.status,
  r.remarks,
  r.timestamp AS created_at,
  r.processed_at,
  r.city_id,
  aa.apartment_id,
  aa.flat_id,
  aa.room_id,
  u.id    AS user_id,
  u.name  AS user_name,
  u.email AS user_email,
  u.role  AS user_role
FROM requests r
JOIN users u ON u.id = r.user_id
LEFT JOIN assigned_accommodations aa ON aa.request_id = r.id
`
	var args []any
	if status != "" {
		q += "WHERE r.status = ?\n"
		args = append(args, status)
	}
	q += "ORDER BY r.timestamp DESC"

	var rows []FlatRequestRow
	tx := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

// UpdateStatus resolves a request. Returns false when no row matched;
// an already-resolved request is overwritten, not guarded.
func (r *RequestRepository) UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus, remarks string, processedAt time.Time) (bool, error) {
	tx := r.db.WithContext(ctx).Exec(
		`UPDATE requests SET status = ?, remarks = ?, processed_at = ? WHERE id = ?`,
		string(status), remarks, processedAt, id,
	)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// OwnerContext resolves the requester's email and city for the
// assignment insert that follows an approval.
func (r *RequestRepository) OwnerContext(ctx context.Context, id int64) (email string, cityID int64, err error) {
	var row struct {
		Email  string
		CityID int64
	}
	tx := r.db.WithContext(ctx).Raw(
		`SELECT u.email, r.city_id FROM requests r JOIN users u ON u.id = r.user_id WHERE r.id = ?`,
		id,
	).Scan(&row)
	if tx.Error != nil {
		return "", 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return "", 0, gorm.ErrRecordNotFound
	}
	return row.Email, row.CityID, nil
}

func (r *RequestRepository) InsertAssignment(ctx context.Context, a *domain.AssignedAccommodation) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// InsertTeamMember adds one participant row. A replayed email for the
// same request is treated as already present, not as a failure.
func (r *RequestRepository) InsertTeamMember(ctx context.Context, requestID int64, email string) error {
	err := r.db.WithContext(ctx).Create(&domain.TeamMember{
		RequestID: requestID,
		Email:     email,
	}).Error
	if err != nil && isDuplicate(err) {
		return nil
	}
	return err
}

// TeamMembersByRequest fetches every participant row and groups the
// emails by request id.
func (r *RequestRepository) TeamMembersByRequest(ctx context.Context) (map[int64][]string, error) {
	var members []domain.TeamMember
	tx := r.db.WithContext(ctx).Order("id").Find(&members)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make(map[int64][]string, len(members))
	for _, m := range members {
		out[m.RequestID] = append(out[m.RequestID], m.Email)
	}
	return out, nil
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// sqlite (dev/test) reports unique violations as plain errors
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
