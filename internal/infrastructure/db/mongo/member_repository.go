package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sahayog/membership-system/internal/core/domain"
	"github.com/sahayog/membership-system/internal/core/ports"
)

const collectionMembers = "members"

type MemberRepository struct {
	col *mongo.Collection
}

func NewMemberRepository(db *mongo.Database) *MemberRepository {
	return &MemberRepository{col: db.Collection(collectionMembers)}
}

// mongoMember mirrors the document layout of the members collection. Field
// names match the wire/JSON names so documents stay readable in the shell.
type mongoMember struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	FirstName        string             `bson:"firstName"`
	MiddleName       string             `bson:"middleName"`
	LastName         string             `bson:"lastName"`
	ParentsName      string             `bson:"parentsName"`
	Phone            string             `bson:"phone"`
	Email            string             `bson:"email"`
	DOB              time.Time          `bson:"dob"`
	Aadhar           string             `bson:"aadhar"`
	Occupation       string             `bson:"occupation"`
	Organization     string             `bson:"organization"`
	CurrentAddress   string             `bson:"currentAddress"`
	PermanentAddress string             `bson:"permanentAddress"`
	Art              int                `bson:"art"`
	Sports           int                `bson:"sports"`
	Music            int                `bson:"music"`
	Technology       int                `bson:"technology"`
	Literature       int                `bson:"literature"`
	Science          int                `bson:"science"`
	Reason           string             `bson:"reason"`
	IdempotencyKey   string             `bson:"idempotencyKey,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt"`
}

func toDoc(m *domain.Member) mongoMember {
	return mongoMember{
		FirstName:        m.FirstName,
		MiddleName:       m.MiddleName,
		LastName:         m.LastName,
		ParentsName:      m.ParentsName,
		Phone:            m.Phone,
		Email:            m.Email,
		DOB:              m.DOB,
		Aadhar:           m.Aadhar,
		Occupation:       m.Occupation,
		Organization:     m.Organization,
		CurrentAddress:   m.CurrentAddress,
		PermanentAddress: m.PermanentAddress,
		Art:              m.Interests.Art,
		Sports:           m.Interests.Sports,
		Music:            m.Interests.Music,
		Technology:       m.Interests.Technology,
		Literature:       m.Interests.Literature,
		Science:          m.Interests.Science,
		Reason:           m.Reason,
		IdempotencyKey:   m.IdempotencyKey,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toDomain(doc mongoMember) *domain.Member {
	return &domain.Member{
		ID:               doc.ID.Hex(),
		FirstName:        doc.FirstName,
		MiddleName:       doc.MiddleName,
		LastName:         doc.LastName,
		ParentsName:      doc.ParentsName,
		Phone:            doc.Phone,
		Email:            doc.Email,
		DOB:              doc.DOB.UTC(),
		Aadhar:           doc.Aadhar,
		Occupation:       doc.Occupation,
		Organization:     doc.Organization,
		CurrentAddress:   doc.CurrentAddress,
		PermanentAddress: doc.PermanentAddress,
		Interests: domain.InterestRatings{
			Art:        doc.Art,
			Sports:     doc.Sports,
			Music:      doc.Music,
			Technology: doc.Technology,
			Literature: doc.Literature,
			Science:    doc.Science,
		},
		Reason:         doc.Reason,
		IdempotencyKey: doc.IdempotencyKey,
		CreatedAt:      doc.CreatedAt.UTC(),
		UpdatedAt:      doc.UpdatedAt.UTC(),
	}
}

// Insert stores a new member document and returns its hex object id.
func (r *MemberRepository) Insert(ctx context.Context, m *domain.Member) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toDoc(m))
	if err != nil {
		return "", fmt.Errorf("insert member: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert member: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindByIdempotencyKey retrieves the member created under the given key.
func (r *MemberRepository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoMember
	err := r.col.FindOne(ctx, bson.M{"idempotencyKey": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member by idempotency key: %w", err)
	}
	return toDomain(doc), nil
}

// Search returns members matching filter, sorted by createdAt descending.
// Name fragments match as case-insensitive substrings; email matches whole,
// case-insensitively; phone matches exactly. User input is regex-escaped.
func (r *MemberRepository) Search(ctx context.Context, filter ports.SearchMembersFilter) ([]*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}

	var nameConds []bson.M
	if filter.FirstName != "" {
		nameConds = append(nameConds, bson.M{"firstName": primitive.Regex{
			Pattern: regexp.QuoteMeta(filter.FirstName), Options: "i",
		}})
	}
	if filter.LastName != "" {
		nameConds = append(nameConds, bson.M{"lastName": primitive.Regex{
			Pattern: regexp.QuoteMeta(filter.LastName), Options: "i",
		}})
	}
	if len(nameConds) > 0 {
		query["$or"] = nameConds
	}
	if filter.Email != "" {
		query["email"] = primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(filter.Email) + "$", Options: "i",
		}
	}
	if filter.Phone != "" {
		query["phone"] = filter.Phone
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("search members: %w", err)
	}
	defer cur.Close(ctx)

	var members []*domain.Member
	for cur.Next(ctx) {
		var doc mongoMember
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("search members: decode: %w", err)
		}
		members = append(members, toDomain(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("search members: cursor: %w", err)
	}
	return members, nil
}

// Update applies a sparse $set to the member with the given id. Nil fields
// in update are omitted; updatedAt is always refreshed. A malformed id is
// reported as not found, same as an id that matches nothing.
func (r *MemberRepository) Update(ctx context.Context, id string, update ports.MemberUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMemberNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.CurrentAddress != nil {
		set["currentAddress"] = *update.CurrentAddress
	}
	if update.PermanentAddress != nil {
		set["permanentAddress"] = *update.PermanentAddress
	}
	if update.Reason != nil {
		set["reason"] = *update.Reason
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update member: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the search and idempotency
// lookups.
func (r *MemberRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "phone", Value: 1}}},
		{
			Keys:    bson.D{{Key: "idempotencyKey", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
