package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pathwise/career-advisor/internal/core/domain"
)

const collectionAccounts = "accounts"

// AccountRepository persists Account documents in MongoDB. It is the only
// component that ever sees the stored password hash.
type AccountRepository struct {
	col *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{col: db.Collection(collectionAccounts)}
}

type accountDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash,omitempty"`
	FirstName    string             `bson:"first_name"`
	LastName     string             `bson:"last_name"`

	Age    int    `bson:"age,omitempty"`
	School string `bson:"school,omitempty"`
	Grade  string `bson:"grade,omitempty"`

	Interests              []domain.Interest              `bson:"interests,omitempty"`
	Achievements           []domain.Achievement           `bson:"achievements,omitempty"`
	AcademicProgress       []domain.SubjectProgress       `bson:"academic_progress,omitempty"`
	UniversityApplications []domain.UniversityApplication `bson:"university_applications,omitempty"`
	ApplicationProgress    domain.ApplicationProgress     `bson:"application_progress"`

	CreatedAt int64 `bson:"created_at"`
	UpdatedAt int64 `bson:"updated_at"`
}

// Create inserts a new account. Emails are normalized to lowercase before the
// write so the unique index enforces case-insensitive uniqueness.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toDoc(account)
	doc.Email = strings.ToLower(doc.Email)

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	created := *account
	created.Email = doc.Email
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// FindByEmail looks up an account by lowercased email. The password hash is
// projected out unless includeSecret is set.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string, includeSecret bool) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne()
	if !includeSecret {
		opts.SetProjection(bson.M{"password_hash": 0})
	}

	var doc accountDoc
	err := r.col.FindOne(ctx, bson.M{"email": strings.ToLower(email)}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by email: %w", err)
	}
	return fromDoc(&doc), nil
}

// FindByID resolves an account by its hex ObjectID. The password hash is
// always projected out.
func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	opts := options.FindOne().SetProjection(bson.M{"password_hash": 0})

	var doc accountDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by id: %w", err)
	}
	return fromDoc(&doc), nil
}

// EnsureIndexes creates the unique email index. Called once at startup.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func toDoc(a *domain.Account) *accountDoc {
	return &accountDoc{
		Email:                  a.Email,
		PasswordHash:           a.PasswordHash,
		FirstName:              a.FirstName,
		LastName:               a.LastName,
		Age:                    a.Age,
		School:                 a.School,
		Grade:                  a.Grade,
		Interests:              a.Interests,
		Achievements:           a.Achievements,
		AcademicProgress:       a.AcademicProgress,
		UniversityApplications: a.UniversityApplications,
		ApplicationProgress:    a.ApplicationProgress,
		CreatedAt:              a.CreatedAt.Unix(),
		UpdatedAt:              a.UpdatedAt.Unix(),
	}
}

func fromDoc(d *accountDoc) *domain.Account {
	return &domain.Account{
		ID:                     d.ID.Hex(),
		Email:                  d.Email,
		PasswordHash:           d.PasswordHash,
		FirstName:              d.FirstName,
		LastName:               d.LastName,
		Age:                    d.Age,
		School:                 d.School,
		Grade:                  d.Grade,
		Interests:              d.Interests,
		Achievements:           d.Achievements,
		AcademicProgress:       d.AcademicProgress,
		UniversityApplications: d.UniversityApplications,
		ApplicationProgress:    d.ApplicationProgress,
		CreatedAt:              unixToTime(d.CreatedAt),
		UpdatedAt:              unixToTime(d.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
