package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	historyDomain "github.com/tasklab/tasks-management/internal/history/domain"
)

// HistoryRepoMongoDB implementa HistoryRepository sobre MongoDB. A trilha de
// auditoria é só de inserção e fica fora do armazenamento transacional para
// não competir com as escritas das tarefas.
type HistoryRepoMongoDB struct {
	coll *mongo.Collection
}

// NewHistoryRepoMongoDB é o construtor do repositório.
func NewHistoryRepoMongoDB(ctx context.Context, client *mongo.Client, dbName string) (*HistoryRepoMongoDB, error) {
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("could not ping mongoDB: %w", err)
	}

	return &HistoryRepoMongoDB{
		coll: client.Database(dbName).Collection("task_history"),
	}, nil
}

// Struct de BSON local para não contaminar o domínio com tags de BSON. Os
// identificadores são persistidos como string para manter os documentos
// legíveis nas consultas diretas à coleção.
type mongoTaskHistory struct {
	ID        string    `bson:"_id"`
	TaskID    string    `bson:"taskId"`
	Changes   string    `bson:"changes"`
	ChangedAt time.Time `bson:"changedAt"`
	ChangedBy string    `bson:"changedBy"`
}

func (r *HistoryRepoMongoDB) Create(ctx context.Context, h *historyDomain.TaskHistory) error {
	doc := mongoTaskHistory{
		ID:        h.ID.String(),
		TaskID:    h.TaskID.String(),
		Changes:   h.Changes,
		ChangedAt: h.ChangedAt,
		ChangedBy: h.ChangedBy.String(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert task history: %w", err)
	}
	return nil
}

func (r *HistoryRepoMongoDB) ListByTaskID(ctx context.Context, taskID uuid.UUID) ([]*historyDomain.TaskHistory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "changedAt", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{"taskId": taskID.String()}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query task history: %w", err)
	}
	defer cursor.Close(ctx)

	var items []*historyDomain.TaskHistory
	for cursor.Next(ctx) {
		var doc mongoTaskHistory
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode task history: %w", err)
		}

		id, err := uuid.Parse(doc.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid history id: %w", err)
		}
		docTaskID, err := uuid.Parse(doc.TaskID)
		if err != nil {
			return nil, fmt.Errorf("invalid history task id: %w", err)
		}
		changedBy, err := uuid.Parse(doc.ChangedBy)
		if err != nil {
			return nil, fmt.Errorf("invalid history author id: %w", err)
		}

		items = append(items, &historyDomain.TaskHistory{
			ID:        id,
			TaskID:    docTaskID,
			Changes:   doc.Changes,
			ChangedAt: doc.ChangedAt,
			ChangedBy: changedBy,
		})
	}
	return items, cursor.Err()
}
