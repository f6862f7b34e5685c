package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskforge/task-api/internal/core/domain"
)

const taskCollection = "tasks"

// TaskRepository is the MongoDB-backed task store.
type TaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{coll: db.Collection(taskCollection)}
}

// EnsureIndexes creates the owner index used by list queries.
func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("ensure task indexes: %w", err)
	}
	return nil
}

type mongoTask struct {
	ID          string `bson:"_id"`
	Title       string `bson:"title"`
	Description string `bson:"description,omitempty"`
	Completed   bool   `bson:"completed"`
	OwnerID     string `bson:"owner_id"`
	CreatedAt   int64  `bson:"created_at"`
	UpdatedAt   int64  `bson:"updated_at"`
}

func toMongoTask(t *domain.Task) mongoTask {
	return mongoTask{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		OwnerID:     t.OwnerID,
		CreatedAt:   t.CreatedAt.Unix(),
		UpdatedAt:   t.UpdatedAt.Unix(),
	}
}

func toDomainTask(mt mongoTask) *domain.Task {
	return &domain.Task{
		ID:          mt.ID,
		Title:       mt.Title,
		Description: mt.Description,
		Completed:   mt.Completed,
		OwnerID:     mt.OwnerID,
		CreatedAt:   unixToTime(mt.CreatedAt),
		UpdatedAt:   unixToTime(mt.UpdatedAt),
	}
}

// Create inserts the task, assigning it a fresh id.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	task.ID = uuid.NewString()
	if _, err := r.coll.InsertOne(ctx, toMongoTask(task)); err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	var mt mongoTask
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return toDomainTask(mt), nil
}

func (r *TaskRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer cur.Close(ctx)

	tasks := []*domain.Task{}
	for cur.Next(ctx) {
		var mt mongoTask
		if err := cur.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode task: %w", err)
		}
		tasks = append(tasks, toDomainTask(mt))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Update overwrites the mutable fields of an existing task. The owner id is
// part of the filter only, never of the update document.
func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": task.ID},
		bson.M{"$set": bson.M{
			"title":       task.Title,
			"description": task.Description,
			"completed":   task.Completed,
			"updated_at":  task.UpdatedAt.Unix(),
		}},
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
