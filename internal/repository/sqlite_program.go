package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/concierge/internal/db"
	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/alexanderramin/concierge/internal/scheduler"
)

// programColumns is the canonical SELECT column list for programs.
const programColumns = `id, user_id, city, duration, profile, intensity, interests, guests,
		title, intro_internal, intro_client, closing_internal, closing_client,
		status, start_date, end_date, created_at, updated_at`

const slotColumns = `s.id, s.day_id, s.time_slot, s.time, s.type, s.category,
		s.concierge_notes, s.verification_status, s.is_rest`

const optionColumns = `o.id, o.option_group_id, o.venue_id, o.venue_name, o.sub_category,
		o.address, o.phone, o.hours, o.style, o.description,
		o.is_eiffel_view, o.reservation_required, o.is_selected, o.rank`

// SQLiteProgramRepo implements ProgramRepo using a SQLite database.
type SQLiteProgramRepo struct {
	db db.DBTX
}

// NewSQLiteProgramRepo creates a new SQLiteProgramRepo.
func NewSQLiteProgramRepo(conn db.DBTX) *SQLiteProgramRepo {
	return &SQLiteProgramRepo{db: conn}
}

func (r *SQLiteProgramRepo) Create(ctx context.Context, p *domain.Program) error {
	query := `INSERT INTO programs (id, user_id, city, duration, profile, intensity, interests, guests,
		title, intro_internal, intro_client, closing_internal, closing_client,
		status, start_date, end_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.UserID,
		p.City,
		p.Duration,
		p.Profile,
		string(p.Intensity),
		joinList(p.Interests),
		p.Guests,
		p.Title,
		p.IntroInternal,
		p.IntroClient,
		p.ClosingInternal,
		p.ClosingClient,
		string(p.Status),
		dateValue(p.StartDate),
		dateValue(p.EndDate),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting program: %w", err)
	}

	for i := range p.Days {
		day := &p.Days[i]
		if err := r.insertDay(ctx, day); err != nil {
			return err
		}
		for j := range day.Activities {
			if err := r.insertSlot(ctx, &day.Activities[j]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *SQLiteProgramRepo) insertDay(ctx context.Context, d *domain.ProgramDay) error {
	query := `INSERT INTO program_days (id, program_id, day_number, actual_date, theme_internal, theme_client)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.ProgramID,
		d.DayNumber,
		dateValue(d.ActualDate),
		d.ThemeInternal,
		d.ThemeClient,
	)
	if err != nil {
		return fmt.Errorf("inserting day %d: %w", d.DayNumber, err)
	}
	return nil
}

func (r *SQLiteProgramRepo) insertSlot(ctx context.Context, s *domain.ActivitySlot) error {
	query := `INSERT INTO activity_slots (id, day_id, time_slot, time, type, category,
		concierge_notes, verification_status, is_rest)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.DayID,
		string(s.TimeSlot),
		nullableString(s.Time),
		s.Type,
		string(s.Category),
		s.ConciergeNotes,
		string(s.VerificationStatus),
		boolToInt(s.IsRest),
	)
	if err != nil {
		return fmt.Errorf("inserting slot: %w", err)
	}
	return r.insertOptions(ctx, s.Options)
}

func (r *SQLiteProgramRepo) insertOptions(ctx context.Context, options []domain.ActivityOption) error {
	query := `INSERT INTO activity_options (id, option_group_id, venue_id, venue_name, sub_category,
		address, phone, hours, style, description,
		is_eiffel_view, reservation_required, is_selected, rank)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, o := range options {
		_, err := r.db.ExecContext(ctx, query,
			o.ID,
			o.OptionGroupID,
			o.VenueID,
			o.VenueName,
			o.SubCategory,
			o.Address,
			o.Phone,
			o.Hours,
			o.Style,
			o.Description,
			boolToInt(o.IsEiffelView),
			boolToInt(o.ReservationRequired),
			boolToInt(o.IsSelected),
			o.Rank,
		)
		if err != nil {
			return fmt.Errorf("inserting option %q: %w", o.VenueName, err)
		}
	}
	return nil
}

// GetByID loads the program and its full day/slot/option tree. Rows are read
// in three passes so that no result set stays open across queries.
func (r *SQLiteProgramRepo) GetByID(ctx context.Context, id string) (*domain.Program, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+programColumns+` FROM programs WHERE id = ?`, id)
	p, err := scanProgram(row)
	if err != nil {
		return nil, err
	}

	if p.Days, err = r.loadDays(ctx, id); err != nil {
		return nil, err
	}
	slots, err := r.loadSlots(ctx, id)
	if err != nil {
		return nil, err
	}
	options, err := r.loadOptions(ctx, id)
	if err != nil {
		return nil, err
	}

	for i := range slots {
		slots[i].Options = options[slots[i].ID]
		scheduler.SortOptions(slots[i].Options)
	}
	byDay := make(map[string][]domain.ActivitySlot)
	for _, s := range slots {
		byDay[s.DayID] = append(byDay[s.DayID], s)
	}
	for i := range p.Days {
		p.Days[i].Activities = byDay[p.Days[i].ID]
		scheduler.SortSlots(p.Days[i].Activities)
	}
	return p, nil
}

func (r *SQLiteProgramRepo) loadDays(ctx context.Context, programID string) ([]domain.ProgramDay, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, program_id, day_number, actual_date, theme_internal, theme_client
		FROM program_days WHERE program_id = ? ORDER BY day_number`, programID)
	if err != nil {
		return nil, fmt.Errorf("listing days: %w", err)
	}
	defer rows.Close()

	var days []domain.ProgramDay
	for rows.Next() {
		var d domain.ProgramDay
		var actual sql.NullString
		if err := rows.Scan(&d.ID, &d.ProgramID, &d.DayNumber, &actual, &d.ThemeInternal, &d.ThemeClient); err != nil {
			return nil, fmt.Errorf("scanning day row: %w", err)
		}
		d.ActualDate = scanDate(actual)
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating days: %w", err)
	}
	return days, nil
}

func (r *SQLiteProgramRepo) loadSlots(ctx context.Context, programID string) ([]domain.ActivitySlot, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+slotColumns+`
		FROM activity_slots s JOIN program_days d ON d.id = s.day_id
		WHERE d.program_id = ?`, programID)
	if err != nil {
		return nil, fmt.Errorf("listing slots: %w", err)
	}
	defer rows.Close()

	var slots []domain.ActivitySlot
	for rows.Next() {
		s, err := scanSlotFromRows(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating slots: %w", err)
	}
	return slots, nil
}

// loadOptions returns the program's options keyed by option group.
func (r *SQLiteProgramRepo) loadOptions(ctx context.Context, programID string) (map[string][]domain.ActivityOption, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+optionColumns+`
		FROM activity_options o
		JOIN activity_slots s ON s.id = o.option_group_id
		JOIN program_days d ON d.id = s.day_id
		WHERE d.program_id = ?`, programID)
	if err != nil {
		return nil, fmt.Errorf("listing options: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.ActivityOption)
	for rows.Next() {
		o, err := scanOptionFromRows(rows)
		if err != nil {
			return nil, err
		}
		out[o.OptionGroupID] = append(out[o.OptionGroupID], o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating options: %w", err)
	}
	return out, nil
}

func (r *SQLiteProgramRepo) ListByUser(ctx context.Context, userID string) ([]ProgramSummary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, user_id, city, title, duration, intensity, status, start_date, created_at
		FROM programs WHERE user_id = ? ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing programs: %w", err)
	}
	defer rows.Close()

	var out []ProgramSummary
	for rows.Next() {
		var s ProgramSummary
		var intensity, status, createdAt string
		var start sql.NullString
		if err := rows.Scan(&s.ID, &s.UserID, &s.City, &s.Title, &s.Duration, &intensity, &status, &start, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning program row: %w", err)
		}
		s.Intensity = domain.Intensity(intensity)
		s.Status = domain.ProgramStatus(status)
		s.StartDate = scanDate(start)
		if s.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating programs: %w", err)
	}
	return out, nil
}

func (r *SQLiteProgramRepo) UpdateHeader(ctx context.Context, p *domain.Program) error {
	query := `UPDATE programs SET title = ?, intro_internal = ?, intro_client = ?,
		closing_internal = ?, closing_client = ?, status = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Title,
		p.IntroInternal,
		p.IntroClient,
		p.ClosingInternal,
		p.ClosingClient,
		string(p.Status),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating program: %w", err)
	}
	return requireRow(res, "program")
}

func (r *SQLiteProgramRepo) UpdateDay(ctx context.Context, d *domain.ProgramDay) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE program_days SET theme_internal = ?, theme_client = ? WHERE id = ?`,
		d.ThemeInternal, d.ThemeClient, d.ID)
	if err != nil {
		return fmt.Errorf("updating day: %w", err)
	}
	return requireRow(res, "program day")
}

func (r *SQLiteProgramRepo) SaveSlot(ctx context.Context, s *domain.ActivitySlot) error {
	query := `UPDATE activity_slots SET time = ?, type = ?, category = ?, concierge_notes = ?,
		verification_status = ?, is_rest = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableString(s.Time),
		s.Type,
		string(s.Category),
		s.ConciergeNotes,
		string(s.VerificationStatus),
		boolToInt(s.IsRest),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating slot: %w", err)
	}
	if err := requireRow(res, "activity slot"); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM activity_options WHERE option_group_id = ?`, s.ID); err != nil {
		return fmt.Errorf("clearing options: %w", err)
	}
	return r.insertOptions(ctx, s.Options)
}

func (r *SQLiteProgramRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM programs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting program: %w", err)
	}
	return requireRow(res, "program")
}

// ProgramIDBySlot returns the program owning the slot with the given option
// group id.
func (r *SQLiteProgramRepo) ProgramIDBySlot(ctx context.Context, groupID string) (string, error) {
	return r.programIDBy(ctx, "activity slot", `SELECT d.program_id
		FROM activity_slots s JOIN program_days d ON d.id = s.day_id
		WHERE s.id = ?`, groupID)
}

// ProgramIDByOption returns the program owning the option with the given id.
func (r *SQLiteProgramRepo) ProgramIDByOption(ctx context.Context, optionID string) (string, error) {
	return r.programIDBy(ctx, "activity option", `SELECT d.program_id
		FROM activity_options o
		JOIN activity_slots s ON s.id = o.option_group_id
		JOIN program_days d ON d.id = s.day_id
		WHERE o.id = ?`, optionID)
}

func (r *SQLiteProgramRepo) ProgramIDByDay(ctx context.Context, dayID string) (string, error) {
	return r.programIDBy(ctx, "program day", `SELECT program_id FROM program_days WHERE id = ?`, dayID)
}

func (r *SQLiteProgramRepo) programIDBy(ctx context.Context, what, query, id string) (string, error) {
	var programID string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&programID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", what, err)
	}
	return programID, nil
}

func requireRow(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}

// scanProgram scans a single program row from a *sql.Row.
func scanProgram(row *sql.Row) (*domain.Program, error) {
	var p domain.Program
	var intensity, interests, status, createdAt, updatedAt string
	var start, end sql.NullString

	err := row.Scan(
		&p.ID, &p.UserID, &p.City, &p.Duration, &p.Profile, &intensity, &interests, &p.Guests,
		&p.Title, &p.IntroInternal, &p.IntroClient, &p.ClosingInternal, &p.ClosingClient,
		&status, &start, &end, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("program: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning program: %w", err)
	}

	p.Intensity = domain.Intensity(intensity)
	p.Interests = splitList(interests)
	p.Status = domain.ProgramStatus(status)
	p.StartDate = scanDate(start)
	p.EndDate = scanDate(end)
	if p.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTimestamp(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanSlotFromRows(rows *sql.Rows) (domain.ActivitySlot, error) {
	var s domain.ActivitySlot
	var timeSlot, category, status string
	var at sql.NullString
	var isRest int

	err := rows.Scan(&s.ID, &s.DayID, &timeSlot, &at, &s.Type, &category,
		&s.ConciergeNotes, &status, &isRest)
	if err != nil {
		return s, fmt.Errorf("scanning slot row: %w", err)
	}
	s.TimeSlot = domain.TimeSlot(timeSlot)
	s.Time = stringPtr(at)
	s.Category = domain.Category(category)
	s.VerificationStatus = domain.VerificationStatus(status)
	s.IsRest = intToBool(isRest)
	return s, nil
}

func scanOptionFromRows(rows *sql.Rows) (domain.ActivityOption, error) {
	var o domain.ActivityOption
	var eiffel, reservation, selected int

	err := rows.Scan(&o.ID, &o.OptionGroupID, &o.VenueID, &o.VenueName, &o.SubCategory,
		&o.Address, &o.Phone, &o.Hours, &o.Style, &o.Description,
		&eiffel, &reservation, &selected, &o.Rank)
	if err != nil {
		return o, fmt.Errorf("scanning option row: %w", err)
	}
	o.IsEiffelView = intToBool(eiffel)
	o.ReservationRequired = intToBool(reservation)
	o.IsSelected = intToBool(selected)
	return o, nil
}
