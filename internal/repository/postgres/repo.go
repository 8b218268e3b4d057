package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/stream-service/internal/config"
	"github.com/s21platform/stream-service/internal/model"
)

type txKey struct{}

// database is satisfied by both *sqlx.DB and *sqlx.Tx.
type database interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// WithTx runs cb with a transaction stored in the context; every query
// issued through Chk inside cb joins that transaction.
func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	dbTx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	txCtx := context.WithValue(ctx, txKey{}, dbTx)

	if err := cb(txCtx); err != nil {
		_ = dbTx.Rollback()
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

// Chk returns the transaction bound to ctx, or the plain connection when
// the call runs outside a transaction.
func (r *Repository) Chk(ctx context.Context) database {
	if dbTx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return dbTx
	}
	return r.connection
}

// ----------------------------- streams -----------------------------

func (r *Repository) GetStreamByID(ctx context.Context, streamID uuid.UUID) (*model.Stream, error) {
	query, args, err := sq.Select(
		"id",
		"organizer_id",
		"title",
		"visibility",
		"status",
		"source",
		"scheduled_start",
		"scheduled_end",
		"external_id",
		"external_link",
		"total_attendees",
		"total_speakers",
		"like_count",
		"bookmark_count",
		"deleted",
		"created_at",
		"updated_at",
	).
		From("streams").
		Where(sq.Eq{"id": streamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var stream model.Stream
	err = r.Chk(ctx).GetContext(ctx, &stream, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrStreamNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stream: %v", err)
	}

	return &stream, nil
}

func (r *Repository) SetStreamExternalRef(ctx context.Context, streamID uuid.UUID, ref *model.ExternalEventRef) error {
	query, args, err := sq.Update("streams").
		Set("external_id", ref.ExternalID).
		Set("external_link", ref.ExternalLink).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": streamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set external ref: %v", err)
	}

	return nil
}

// IncrementTotalAttendees mutates the counter in place so concurrent
// admissions cannot lose updates.
func (r *Repository) IncrementTotalAttendees(ctx context.Context, streamID uuid.UUID, delta int64) error {
	return r.incrementStreamCounter(ctx, streamID, "total_attendees", delta)
}

func (r *Repository) IncrementTotalSpeakers(ctx context.Context, streamID uuid.UUID, delta int64) error {
	return r.incrementStreamCounter(ctx, streamID, "total_speakers", delta)
}

func (r *Repository) incrementStreamCounter(ctx context.Context, streamID uuid.UUID, column string, delta int64) error {
	query, args, err := sq.Update("streams").
		Set(column, sq.Expr(column+" + ?", delta)).
		Where(sq.Eq{"id": streamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to increment %s: %v", column, err)
	}

	return nil
}

// ----------------------------- attendees -----------------------------

var attendeeColumns = []string{
	"id",
	"stream_id",
	"member_id",
	"request_to_join_status",
	"attending",
	"is_speaker",
	"is_organizer",
	"removed",
	"full_name",
	"email",
	"attendee_comment",
	"organizer_comment",
	"created_at",
	"updated_at",
}

func (r *Repository) GetAttendee(ctx context.Context, streamID, memberID uuid.UUID) (*model.Attendee, error) {
	query, args, err := sq.Select(attendeeColumns...).
		From("attendees").
		Where(sq.And{
			sq.Eq{"stream_id": streamID},
			sq.Eq{"member_id": memberID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var attendee model.Attendee
	err = r.Chk(ctx).GetContext(ctx, &attendee, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrAttendeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attendee: %v", err)
	}

	return &attendee, nil
}

func (r *Repository) CreateAttendee(ctx context.Context, attendee *model.Attendee) error {
	query, args, err := sq.Insert("attendees").
		Columns("id", "stream_id", "member_id", "request_to_join_status", "attending",
			"is_speaker", "is_organizer", "full_name", "email", "attendee_comment", "organizer_comment").
		Values(attendee.ID, attendee.StreamID, attendee.MemberID, attendee.Status, attendee.Attending,
			attendee.IsSpeaker, attendee.IsOrganizer, attendee.FullName, attendee.Email,
			attendee.AttendeeComment, attendee.OrganizerComment).
		Suffix("ON CONFLICT (stream_id, member_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create attendee: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to create attendee: %v", err)
	}
	if affected == 0 {
		// a concurrent insert holds the (stream_id, member_id) row
		return model.ErrAlreadyJoined
	}

	return nil
}

func (r *Repository) UpdateAttendee(ctx context.Context, attendee *model.Attendee) error {
	query, args, err := sq.Update("attendees").
		Set("request_to_join_status", attendee.Status).
		Set("attending", attendee.Attending).
		Set("is_speaker", attendee.IsSpeaker).
		Set("removed", attendee.Removed).
		Set("full_name", attendee.FullName).
		Set("attendee_comment", attendee.AttendeeComment).
		Set("organizer_comment", attendee.OrganizerComment).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": attendee.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update attendee: %v", err)
	}

	return nil
}

func (r *Repository) GetAttendeesByMemberIDs(ctx context.Context, streamID uuid.UUID, memberIDs []uuid.UUID, statuses []model.RequestToJoinStatus) (model.AttendeeList, error) {
	if len(memberIDs) == 0 {
		return model.AttendeeList{}, nil
	}

	query, args, err := sq.Select(attendeeColumns...).
		From("attendees").
		Where(sq.And{
			sq.Eq{"stream_id": streamID},
			sq.Eq{"member_id": memberIDs},
			sq.Eq{"request_to_join_status": statuses},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var attendees model.AttendeeList
	err = r.Chk(ctx).SelectContext(ctx, &attendees, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendees by member ids: %v", err)
	}

	return attendees, nil
}

func (r *Repository) GetStreamAttendees(ctx context.Context, streamID uuid.UUID, page model.Page) (model.AttendeeList, int64, error) {
	page = page.Normalize()

	query, args, err := sq.Select(attendeeColumns...).
		From("attendees").
		Where(sq.And{
			sq.Eq{"stream_id": streamID},
			sq.Eq{"removed": false},
		}).
		OrderBy("created_at ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var attendees model.AttendeeList
	err = r.Chk(ctx).SelectContext(ctx, &attendees, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get stream attendees: %v", err)
	}

	countQuery, countArgs, err := sq.Select("COUNT(*)").
		From("attendees").
		Where(sq.And{
			sq.Eq{"stream_id": streamID},
			sq.Eq{"removed": false},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var total int64
	err = r.Chk(ctx).GetContext(ctx, &total, countQuery, countArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count stream attendees: %v", err)
	}

	return attendees, total, nil
}

// ----------------------------- speakers -----------------------------

var speakerColumns = []string{
	"id",
	"stream_id",
	"attendee_id",
	"member_id",
	"full_name",
	"title",
	"description",
	"email",
	"created_at",
	"updated_at",
}

func (r *Repository) GetStreamSpeakers(ctx context.Context, streamID uuid.UUID) (model.SpeakerList, error) {
	query, args, err := sq.Select(speakerColumns...).
		From("speakers").
		Where(sq.Eq{"stream_id": streamID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var speakers model.SpeakerList
	err = r.Chk(ctx).SelectContext(ctx, &speakers, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get stream speakers: %v", err)
	}

	return speakers, nil
}

func (r *Repository) GetSpeakersByMemberIDs(ctx context.Context, streamID uuid.UUID, memberIDs []uuid.UUID) (model.SpeakerList, error) {
	if len(memberIDs) == 0 {
		return model.SpeakerList{}, nil
	}

	query, args, err := sq.Select(speakerColumns...).
		From("speakers").
		Where(sq.And{
			sq.Eq{"stream_id": streamID},
			sq.Eq{"member_id": memberIDs},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var speakers model.SpeakerList
	err = r.Chk(ctx).SelectContext(ctx, &speakers, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get speakers by member ids: %v", err)
	}

	return speakers, nil
}

func (r *Repository) GetSpeakersByIDs(ctx context.Context, streamID uuid.UUID, speakerIDs []uuid.UUID) (model.SpeakerList, error) {
	if len(speakerIDs) == 0 {
		return model.SpeakerList{}, nil
	}

	query, args, err := sq.Select(speakerColumns...).
		From("speakers").
		Where(sq.And{
			sq.Eq{"stream_id": streamID},
			sq.Eq{"id": speakerIDs},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var speakers model.SpeakerList
	err = r.Chk(ctx).SelectContext(ctx, &speakers, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get speakers by ids: %v", err)
	}

	return speakers, nil
}

func (r *Repository) CreateSpeakers(ctx context.Context, speakers []model.Speaker) error {
	if len(speakers) == 0 {
		return nil
	}

	query := sq.Insert("speakers").
		Columns("id", "stream_id", "attendee_id", "member_id", "full_name", "title", "description", "email").
		PlaceholderFormat(sq.Dollar)

	for _, speaker := range speakers {
		query = query.Values(speaker.ID, speaker.StreamID, speaker.AttendeeID, speaker.MemberID,
			speaker.FullName, speaker.Title, speaker.Description, speaker.Email)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("failed to create speakers: %v", err)
	}

	return nil
}

func (r *Repository) UpdateSpeaker(ctx context.Context, speaker *model.Speaker) error {
	query, args, err := sq.Update("speakers").
		Set("attendee_id", speaker.AttendeeID).
		Set("full_name", speaker.FullName).
		Set("title", speaker.Title).
		Set("description", speaker.Description).
		Set("email", speaker.Email).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": speaker.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update speaker: %v", err)
	}

	return nil
}

func (r *Repository) DeleteSpeakers(ctx context.Context, streamID uuid.UUID, speakerIDs []uuid.UUID) (int64, error) {
	if len(speakerIDs) == 0 {
		return 0, nil
	}

	query, args, err := sq.Delete("speakers").
		Where(sq.And{
			sq.Eq{"stream_id": streamID},
			sq.Eq{"id": speakerIDs},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete speakers: %v", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %v", err)
	}

	return deleted, nil
}

// ClearAttendeeSpeakerFlag drops is_speaker without touching approval or
// attendance: speaker and attendee status are decoupled once granted.
func (r *Repository) ClearAttendeeSpeakerFlag(ctx context.Context, attendeeIDs []uuid.UUID) error {
	if len(attendeeIDs) == 0 {
		return nil
	}

	query, args, err := sq.Update("attendees").
		Set("is_speaker", false).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": attendeeIDs}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to clear speaker flag: %v", err)
	}

	return nil
}

// ----------------------------- members -----------------------------

func (r *Repository) UpsertMember(ctx context.Context, member *model.Member) error {
	query, args, err := sq.Insert("members").
		Columns("id", "full_name", "email", "avatar_url").
		Values(member.ID, member.FullName, member.Email, member.AvatarURL).
		Suffix("ON CONFLICT (id) DO UPDATE SET full_name = EXCLUDED.full_name, email = EXCLUDED.email, avatar_url = EXCLUDED.avatar_url").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert member: %v", err)
	}

	return nil
}
