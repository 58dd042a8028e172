package postgre

import (
	"context"
	"errors"
	"fmt"

	repo "personal-assistant/internal/meeting/repository"
	"personal-assistant/internal/model"

	"github.com/jackc/pgx/v5"
)

const meetingColumns = `id, title, start_time, end_time, created_at, calendar_event_id`

func (r *implRepository) CreateMeeting(ctx context.Context, opt repo.CreateMeetingOptions) (model.Meeting, error) {
	const query = `
		INSERT INTO meetings (id, title, start_time, end_time, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + meetingColumns

	m, err := scanMeeting(r.db.QueryRow(ctx, query, r.newID(), opt.Title, opt.StartTime, opt.EndTime))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMeeting"), err)
		return model.Meeting{}, repo.ErrFailedToInsert
	}
	return m, nil
}

func (r *implRepository) GetOneMeeting(ctx context.Context, opt repo.GetOneMeetingOptions) (model.Meeting, error) {
	where, args := buildGetOneQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM meetings WHERE %s ORDER BY created_at ASC, id ASC LIMIT 1`, meetingColumns, where)

	m, err := scanMeeting(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Meeting{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneMeeting"), err)
		return model.Meeting{}, repo.ErrFailedToGet
	}
	return m, nil
}

func (r *implRepository) ListMeetings(ctx context.Context, opt repo.ListMeetingsOptions) ([]model.Meeting, error) {
	mods, args := buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM meetings %s`, meetingColumns, mods)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMeetings"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var meetings []model.Meeting
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListMeetings"), err)
			return nil, repo.ErrFailedToList
		}
		meetings = append(meetings, m)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListMeetings"), err)
		return nil, repo.ErrFailedToList
	}
	return meetings, nil
}

func (r *implRepository) UpdateMeeting(ctx context.Context, opt repo.UpdateMeetingOptions) (model.Meeting, error) {
	const query = `UPDATE meetings SET calendar_event_id = $1 WHERE id = $2 RETURNING ` + meetingColumns

	m, err := scanMeeting(r.db.QueryRow(ctx, query, opt.CalendarEventID, opt.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Meeting{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateMeeting"), err)
		return model.Meeting{}, repo.ErrFailedToUpdate
	}
	return m, nil
}

func (r *implRepository) DeleteMeeting(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM meetings WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteMeeting"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func scanMeeting(row pgx.Row) (model.Meeting, error) {
	var m model.Meeting
	err := row.Scan(&m.ID, &m.Title, &m.StartTime, &m.EndTime, &m.CreatedAt, &m.CalendarEventID)
	return m, err
}
