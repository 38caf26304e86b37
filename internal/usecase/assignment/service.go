package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johnquangdev/discussion-planner/internal/domain/entities"
	"github.com/johnquangdev/discussion-planner/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/discussion-planner/internal/usecase/errors"
)

// Generation outcomes reported to the metrics recorder
const (
	OutcomeSuccess      = "success"
	OutcomeInvalidInput = "invalid_input"
	OutcomeDisabled     = "disabled"
	OutcomeBusy         = "busy"
	OutcomeError        = "error"
)

// Locker serializes generation per event
type Locker interface {
	// Acquire takes the lock and returns an owner token. It returns
	// ErrLockNotAcquired when another owner holds the lock.
	Acquire(ctx context.Context, key string, ttl time.Duration) (string, error)

	// Release frees the lock if it is still held by token
	Release(ctx context.Context, key, token string) error
}

// MetricsRecorder receives generation metrics
type MetricsRecorder interface {
	ObserveGeneration(outcome string, duration time.Duration)
	AddWarnings(n int)
	AddUnseated(n int)
}

// Service defines the interface for the assignment use case
type Service interface {
	// GenerateAssignments recomputes and stores the seating plan of an event
	GenerateAssignments(ctx context.Context, eventID uuid.UUID) (*GenerateOutput, error)

	// GetAssignments lists the stored assignments, optionally for one round
	GetAssignments(ctx context.Context, eventID uuid.UUID, round *int) ([]*entities.Assignment, error)

	// ClearAssignments deletes the stored assignments of an event
	ClearAssignments(ctx context.Context, eventID uuid.UUID) (int64, error)

	// GetStatistics returns the statistics stored by the last generation
	GetStatistics(ctx context.Context, eventID uuid.UUID) (*entities.AssignmentStatistics, error)

	// GetSeatingPlan gathers everything needed to render the stored plan
	GetSeatingPlan(ctx context.Context, eventID uuid.UUID) (*SeatingPlan, error)
}

// Ensure AssignmentService implements Service interface
var _ Service = (*AssignmentService)(nil)

// ServiceConfig tunes the generation lock
type ServiceConfig struct {
	LockTTL  time.Duration
	LockWait time.Duration
}

// GenerateOutput is the result of a stored generation
type GenerateOutput struct {
	Event       *entities.Event
	Assignments []entities.Assignment
	Statistics  entities.AssignmentStatistics
	Warnings    []string
}

// SeatingPlan is the stored plan of an event with the rows it refers to
type SeatingPlan struct {
	Event        *entities.Event
	Participants map[uuid.UUID]*entities.Participant
	Topics       map[uuid.UUID]*entities.Topic
	Assignments  []*entities.Assignment
	Statistics   *entities.AssignmentStatistics
}

// AssignmentService handles assignment business logic
type AssignmentService struct {
	eventRepo       repositories.EventRepository
	participantRepo repositories.ParticipantRepository
	topicRepo       repositories.TopicRepository
	rankingRepo     repositories.TopicRankingRepository
	assignmentRepo  repositories.AssignmentRepository
	locker          Locker
	metrics         MetricsRecorder
	cfg             ServiceConfig
	logger          *zap.Logger
	now             func() time.Time
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	eventRepo repositories.EventRepository,
	participantRepo repositories.ParticipantRepository,
	topicRepo repositories.TopicRepository,
	rankingRepo repositories.TopicRankingRepository,
	assignmentRepo repositories.AssignmentRepository,
	locker Locker,
	metrics MetricsRecorder,
	cfg ServiceConfig,
	logger *zap.Logger,
) *AssignmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = 30 * time.Second
	}
	return &AssignmentService{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		topicRepo:       topicRepo,
		rankingRepo:     rankingRepo,
		assignmentRepo:  assignmentRepo,
		locker:          locker,
		metrics:         metrics,
		cfg:             cfg,
		logger:          logger,
		now:             time.Now,
	}
}

// GenerateAssignments recomputes the seating plan of an event from the current
// snapshot and replaces the stored one
func (s *AssignmentService) GenerateAssignments(ctx context.Context, eventID uuid.UUID) (*GenerateOutput, error) {
	started := s.now()
	outcome := OutcomeError
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveGeneration(outcome, s.now().Sub(started))
		}
	}()

	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if !event.EnableAutoAssignment {
		outcome = OutcomeDisabled
		return nil, usecaseErrors.ErrAutoAssignmentDisabled
	}

	key := lockKey(eventID)
	token, err := s.acquireLock(ctx, key)
	if err != nil {
		if errors.Is(err, usecaseErrors.ErrGenerationInProgress) {
			outcome = OutcomeBusy
		}
		return nil, err
	}
	defer func() {
		// the request context may already be cancelled here
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if relErr := s.locker.Release(releaseCtx, key, token); relErr != nil {
			s.logger.Warn("⚠️ Failed to release generation lock",
				zap.String("event_id", eventID.String()),
				zap.Error(relErr),
			)
		}
	}()

	input, err := s.loadSnapshot(ctx, event)
	if err != nil {
		return nil, err
	}

	s.logger.Info("🧮 Generating assignments",
		zap.String("event_id", eventID.String()),
		zap.Int("participants", len(input.Participants)),
		zap.Int("topics", len(input.Topics)),
		zap.Int("rankings", len(input.Rankings)),
		zap.Int("rounds", event.NumberOfRounds),
	)

	result, err := Generate(input)
	if err != nil {
		if IsInputError(err) {
			outcome = OutcomeInvalidInput
			return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrInvalidInput, err)
		}
		return nil, err
	}

	result.Statistics.GeneratedAt = s.now().UTC()
	if err := event.SetAssignmentStatistics(&result.Statistics); err != nil {
		return nil, fmt.Errorf("failed to encode statistics: %w", err)
	}

	if err := s.assignmentRepo.ReplaceForEvent(ctx, event, result.Assignments); err != nil {
		s.logger.Error("❌ Failed to store assignments",
			zap.String("event_id", eventID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: failed to store assignments: %w", usecaseErrors.ErrStorageWrite, err)
	}

	outcome = OutcomeSuccess
	unseated := result.Statistics.TotalParticipants*event.NumberOfRounds - result.Statistics.TotalAssignments
	if s.metrics != nil {
		s.metrics.AddWarnings(len(result.Warnings))
		s.metrics.AddUnseated(unseated)
	}

	s.logger.Info("✅ Assignments generated",
		zap.String("event_id", eventID.String()),
		zap.Int("assignments", len(result.Assignments)),
		zap.Int("topics_used", result.Statistics.TopicsUsed),
		zap.Int("unseated", unseated),
		zap.Int("warnings", len(result.Warnings)),
	)
	for _, w := range result.Warnings {
		s.logger.Warn("⚠️ Assignment warning", zap.String("event_id", eventID.String()), zap.String("warning", w))
	}

	return &GenerateOutput{
		Event:       event,
		Assignments: result.Assignments,
		Statistics:  result.Statistics,
		Warnings:    result.Warnings,
	}, nil
}

// GetAssignments lists the stored assignments, optionally for one round
func (s *AssignmentService) GetAssignments(ctx context.Context, eventID uuid.UUID, round *int) ([]*entities.Assignment, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if round != nil && (*round < 1 || *round > event.NumberOfRounds) {
		return nil, usecaseErrors.ErrInvalidRoundFilter
	}

	assignments, err := s.assignmentRepo.FindByEventID(ctx, eventID, repositories.AssignmentFilters{RoundNumber: round})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list assignments: %w", usecaseErrors.ErrStorageRead, err)
	}
	return assignments, nil
}

// ClearAssignments deletes the stored assignments of an event
func (s *AssignmentService) ClearAssignments(ctx context.Context, eventID uuid.UUID) (int64, error) {
	if _, err := s.getEvent(ctx, eventID); err != nil {
		return 0, err
	}

	deleted, err := s.assignmentRepo.DeleteByEventID(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to clear assignments: %w", usecaseErrors.ErrStorageWrite, err)
	}

	s.logger.Info("🗑️ Assignments cleared",
		zap.String("event_id", eventID.String()),
		zap.Int64("deleted", deleted),
	)
	return deleted, nil
}

// GetStatistics returns the statistics stored by the last generation
func (s *AssignmentService) GetStatistics(ctx context.Context, eventID uuid.UUID) (*entities.AssignmentStatistics, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	stats, err := event.AssignmentStatistics()
	if err != nil {
		return nil, fmt.Errorf("failed to decode statistics: %w", err)
	}
	if stats == nil {
		return nil, usecaseErrors.ErrStatisticsNotFound
	}
	return stats, nil
}

// GetSeatingPlan gathers the stored plan with its participants and topics
func (s *AssignmentService) GetSeatingPlan(ctx context.Context, eventID uuid.UUID) (*SeatingPlan, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.FindByEventID(ctx, eventID, repositories.AssignmentFilters{})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list assignments: %w", usecaseErrors.ErrStorageRead, err)
	}
	if len(assignments) == 0 {
		return nil, usecaseErrors.ErrNoAssignments
	}

	participants, err := s.participantRepo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list participants: %w", usecaseErrors.ErrStorageRead, err)
	}
	topics, err := s.topicRepo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list topics: %w", usecaseErrors.ErrStorageRead, err)
	}

	stats, err := event.AssignmentStatistics()
	if err != nil {
		return nil, fmt.Errorf("failed to decode statistics: %w", err)
	}

	plan := &SeatingPlan{
		Event:        event,
		Participants: make(map[uuid.UUID]*entities.Participant, len(participants)),
		Topics:       make(map[uuid.UUID]*entities.Topic, len(topics)),
		Assignments:  assignments,
		Statistics:   stats,
	}
	for _, p := range participants {
		plan.Participants[p.ID] = p
	}
	for _, t := range topics {
		plan.Topics[t.ID] = t
	}
	return plan, nil
}

func (s *AssignmentService) getEvent(ctx context.Context, eventID uuid.UUID) (*entities.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("%w: failed to get event: %w", usecaseErrors.ErrStorageRead, err)
	}
	return event, nil
}

func (s *AssignmentService) loadSnapshot(ctx context.Context, event *entities.Event) (Input, error) {
	participants, err := s.participantRepo.FindActiveByEventID(ctx, event.ID)
	if err != nil {
		return Input{}, fmt.Errorf("%w: failed to load participants: %w", usecaseErrors.ErrStorageRead, err)
	}
	topics, err := s.topicRepo.FindApprovedByEventID(ctx, event.ID)
	if err != nil {
		return Input{}, fmt.Errorf("%w: failed to load topics: %w", usecaseErrors.ErrStorageRead, err)
	}
	rankings, err := s.rankingRepo.FindByEventID(ctx, event.ID)
	if err != nil {
		return Input{}, fmt.Errorf("%w: failed to load rankings: %w", usecaseErrors.ErrStorageRead, err)
	}

	input := Input{
		Event:        event,
		Participants: make([]entities.Participant, 0, len(participants)),
		Topics:       make([]entities.Topic, 0, len(topics)),
		Rankings:     make([]entities.TopicRanking, 0, len(rankings)),
		UserRoles:    make(map[uuid.UUID]string),
		OrganizerIDs: map[uuid.UUID]struct{}{event.OrganizerID: {}},
	}
	for _, p := range participants {
		input.Participants = append(input.Participants, *p)
		if p.UserID != nil {
			input.UserRoles[*p.UserID] = string(p.Role)
			if p.IsOrganizer() {
				input.OrganizerIDs[*p.UserID] = struct{}{}
			}
		}
	}
	for _, t := range topics {
		input.Topics = append(input.Topics, *t)
	}
	for _, r := range rankings {
		input.Rankings = append(input.Rankings, *r)
	}
	return input, nil
}

func (s *AssignmentService) acquireLock(ctx context.Context, key string) (string, error) {
	var token string
	acquire := func() error {
		t, err := s.locker.Acquire(ctx, key, s.cfg.LockTTL)
		if err != nil {
			if errors.Is(err, usecaseErrors.ErrLockNotAcquired) {
				return err
			}
			return backoff.Permanent(err)
		}
		token = t
		return nil
	}

	var bo backoff.BackOff = &backoff.StopBackOff{}
	if s.cfg.LockWait > 0 {
		exp := backoff.NewExponentialBackOff()
		exp.InitialInterval = 50 * time.Millisecond
		exp.MaxInterval = 500 * time.Millisecond
		exp.MaxElapsedTime = s.cfg.LockWait
		bo = exp
	}

	if err := backoff.Retry(acquire, backoff.WithContext(bo, ctx)); err != nil {
		if errors.Is(err, usecaseErrors.ErrLockNotAcquired) {
			return "", usecaseErrors.ErrGenerationInProgress
		}
		return "", fmt.Errorf("%w: failed to acquire generation lock: %w", usecaseErrors.ErrLockBackend, err)
	}
	return token, nil
}

func lockKey(eventID uuid.UUID) string {
	return "assignment:generate:" + eventID.String()
}

// IsInputError reports whether err is a structural input failure of Generate
func IsInputError(err error) bool {
	for _, target := range []error{
		ErrInvalidGroupBounds,
		ErrInvalidRounds,
		ErrInvalidDiscussionsPerRound,
		ErrNoEligibleParticipants,
		ErrNoEligibleTopics,
		ErrMissingEvent,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
