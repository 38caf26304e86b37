package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/johnquangdev/discussion-planner/internal/adapter/repository"
	"github.com/johnquangdev/discussion-planner/internal/domain/entities"
	"github.com/johnquangdev/discussion-planner/internal/infrastructure/database"
	"github.com/johnquangdev/discussion-planner/pkg/config"
)

type seedOptions struct {
	Seed                uint64
	Participants        int
	Topics              int
	Rounds              int
	DiscussionsPerRound int
	IdealGroupSize      int
	MinGroupSize        int
	MaxGroupSize        int
	MinTopicsToRank     int
}

func main() {
	opts := seedOptions{}
	flag.Uint64Var(&opts.Seed, "seed", uint64(time.Now().UnixNano()), "random seed")
	flag.IntVar(&opts.Participants, "participants", 24, "number of participants")
	flag.IntVar(&opts.Topics, "topics", 8, "number of proposed topics")
	flag.IntVar(&opts.Rounds, "rounds", 3, "number of rounds")
	flag.IntVar(&opts.DiscussionsPerRound, "discussions", 4, "discussions per round")
	flag.IntVar(&opts.IdealGroupSize, "ideal", 5, "ideal group size")
	flag.IntVar(&opts.MinGroupSize, "min", 3, "minimum group size")
	flag.IntVar(&opts.MaxGroupSize, "max", 7, "maximum group size")
	flag.IntVar(&opts.MinTopicsToRank, "rank", 3, "topics each participant ranks")
	flag.Parse()

	log.Println("🚀 Starting demo event seeding...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	ctx := context.Background()
	faker := gofakeit.New(opts.Seed)

	eventRepo := repository.NewEventRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	rankingRepo := repository.NewTopicRankingRepository(db)

	event, participants, topics, rankings := buildDemoEvent(faker, opts)

	if err := eventRepo.Create(ctx, event); err != nil {
		log.Fatalf("❌ Failed to create event: %v", err)
	}
	for _, p := range participants {
		if err := participantRepo.Create(ctx, p); err != nil {
			log.Fatalf("❌ Failed to create participant %s: %v", p.Label(), err)
		}
	}
	for _, t := range topics {
		if err := topicRepo.Create(ctx, t); err != nil {
			log.Fatalf("❌ Failed to create topic %q: %v", t.Title, err)
		}
	}
	for _, r := range rankings {
		if err := rankingRepo.Upsert(ctx, r); err != nil {
			log.Fatalf("❌ Failed to store ranking for %s: %v", r.ParticipantID, err)
		}
	}

	fmt.Printf("═══════════════════════════════════════════════════════\n")
	fmt.Printf("🟢 Event: %s\n", event.Name)
	fmt.Printf("🆔 ID: %s\n", event.ID)
	fmt.Printf("👥 Participants: %d\n", len(participants))
	fmt.Printf("💬 Topics: %d\n", len(topics))
	fmt.Printf("⭐ Rankings: %d\n", len(rankings))
	fmt.Printf("🌱 Seed: %d\n", opts.Seed)
	fmt.Printf("═══════════════════════════════════════════════════════\n")
	fmt.Printf("POST /v1/events/%s/assignments/generate\n", event.ID)
}

// buildDemoEvent creates an event with a mix of active and inactive participants,
// approved and pending topics, and rankings over the approved topics.
func buildDemoEvent(faker *gofakeit.Faker, opts seedOptions) (*entities.Event, []*entities.Participant, []*entities.Topic, []*entities.TopicRanking) {
	organizerID := uuid.New()
	event := &entities.Event{
		ID:                   uuid.New(),
		Name:                 fmt.Sprintf("%s %s Unconference", faker.HackerAdjective(), faker.HackerNoun()),
		OrganizerID:          organizerID,
		Status:               entities.EventStatusOpen,
		NumberOfRounds:       opts.Rounds,
		DiscussionsPerRound:  opts.DiscussionsPerRound,
		IdealGroupSize:       opts.IdealGroupSize,
		MinGroupSize:         opts.MinGroupSize,
		MaxGroupSize:         opts.MaxGroupSize,
		MinTopicsToRank:      opts.MinTopicsToRank,
		EnableAutoAssignment: true,
	}

	statuses := []string{
		string(entities.ParticipantStatusRegistered),
		string(entities.ParticipantStatusConfirmed),
		string(entities.ParticipantStatusCheckedIn),
		string(entities.ParticipantStatusInvited),
		string(entities.ParticipantStatusCancelled),
	}

	participants := make([]*entities.Participant, 0, opts.Participants)
	for i := 0; i < opts.Participants; i++ {
		email := faker.Email()
		role := entities.ParticipantRoleParticipant
		status := entities.ParticipantStatusConfirmed
		if i == 0 {
			role = entities.ParticipantRoleOrganizer
		} else if faker.Number(1, 10) == 1 {
			// about one in ten participants gets a random, possibly inactive, status
			status = entities.ParticipantStatus(faker.RandomString(statuses))
		}
		participants = append(participants, &entities.Participant{
			ID:          uuid.New(),
			EventID:     event.ID,
			Email:       &email,
			DisplayName: faker.Name(),
			Role:        role,
			Status:      status,
		})
	}

	topics := make([]*entities.Topic, 0, opts.Topics)
	approved := make([]uuid.UUID, 0, opts.Topics)
	for i := 0; i < opts.Topics; i++ {
		status := entities.TopicStatusApproved
		if i >= opts.Topics-1 && opts.Topics > 2 {
			status = entities.TopicStatusProposed
		}
		proposer := participants[faker.Number(0, len(participants)-1)]
		topic := &entities.Topic{
			ID:         uuid.New(),
			EventID:    event.ID,
			Title:      fmt.Sprintf("%s %s %s", faker.HackerVerb(), faker.HackerAdjective(), faker.HackerNoun()),
			ProposedBy: proposer.ID,
			Status:     status,
		}
		topics = append(topics, topic)
		if topic.IsApproved() {
			approved = append(approved, topic.ID)
		}
	}

	rankings := make([]*entities.TopicRanking, 0, len(participants))
	for _, p := range participants {
		// some participants never submit a ranking
		if len(approved) == 0 || faker.Number(1, 8) == 1 {
			continue
		}
		order := append([]uuid.UUID(nil), approved...)
		faker.ShuffleAnySlice(order)
		n := min(len(order), max(1, opts.MinTopicsToRank+faker.Number(0, 2)))
		rankings = append(rankings, &entities.TopicRanking{
			ID:             uuid.New(),
			EventID:        event.ID,
			ParticipantID:  p.ID,
			RankedTopicIDs: order[:n],
			TopicsRanked:   n,
		})
	}

	return event, participants, topics, rankings
}
