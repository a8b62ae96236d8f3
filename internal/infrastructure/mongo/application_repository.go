package mongo

import (
	"context"
	"strings"
	"time"

	admindomain "github.com/hireline/job-application-services/api/internal/admin/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ApplicationRepository は応募集約を MongoDB で扱う実装リポジトリ。
type ApplicationRepository struct {
	applications *mongo.Collection
}

// NewApplicationRepository は応募コレクションを束縛したリポジトリを構築する。
func NewApplicationRepository(db *mongo.Database, collection string) *ApplicationRepository {
	return &ApplicationRepository{applications: db.Collection(collection)}
}

// FindAll は全応募を提出日時の降順で返す。
func (r *ApplicationRepository) FindAll(ctx context.Context) ([]admindomain.SubmissionRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cursor, err := r.applications.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := make([]admindomain.SubmissionRecord, 0)
	for cursor.Next(ctx) {
		var doc ApplicationDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		records = append(records, documentToRecord(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// FindByID は ID 指定で 1 件取得する。見つからない場合は mongo.ErrNoDocuments。
func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*admindomain.SubmissionRecord, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var doc ApplicationDocument
	if err := r.applications.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	record := documentToRecord(doc)
	return &record, nil
}

// Insert は新規応募を保存し、採番した ID を書き戻す。
func (r *ApplicationRepository) Insert(ctx context.Context, record *admindomain.SubmissionRecord) error {
	doc := recordToDocument(*record)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if doc.SubmittedAt.IsZero() {
		doc.SubmittedAt = time.Now().UTC()
	}

	if _, err := r.applications.InsertOne(ctx, doc); err != nil {
		return err
	}
	record.ID = doc.ID.Hex()
	record.SubmittedAt = doc.SubmittedAt
	return nil
}

// UpdateStatus はステータスのみを差し替える。対象が無ければ mongo.ErrNoDocuments。
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status admindomain.Status) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return mongo.ErrNoDocuments
	}

	result, err := r.applications.UpdateByID(ctx, objectID, bson.M{"$set": bson.M{"status": status.String()}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete は ID 指定で 1 件削除する。対象が無ければ mongo.ErrNoDocuments。
func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return mongo.ErrNoDocuments
	}

	result, err := r.applications.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func documentToRecord(doc ApplicationDocument) admindomain.SubmissionRecord {
	record := admindomain.SubmissionRecord{
		ID:               doc.ID.Hex(),
		FullName:         doc.FullName,
		FatherName:       doc.FatherName,
		Email:            doc.Email,
		Phone:            doc.Phone,
		CurrentAddress:   doc.CurrentAddress,
		CurrentCity:      doc.CurrentCity,
		CurrentState:     doc.CurrentState,
		CurrentCountry:   doc.CurrentCountry,
		PermanentAddress: doc.PermanentAddress,
		PermanentCity:    doc.PermanentCity,
		PermanentState:   doc.PermanentState,
		PermanentCountry: doc.PermanentCountry,

		Position:        doc.Position,
		Experience:      doc.Experience,
		OtherExperience: doc.OtherExperience,

		Availability:      doc.Availability,
		OtherAvailability: doc.OtherAvailability,
		ExpectedSalary:    doc.ExpectedSalary,
		CoverLetter:       doc.CoverLetter,
		LinkedIn:          doc.LinkedIn,
		Portfolio:         doc.Portfolio,

		IsFresher: doc.IsFresher,

		ResumePath:                doc.ResumePath,
		AadharCardPath:            doc.AadharCardPath,
		PanCardPath:               doc.PanCardPath,
		PassportPath:              doc.PassportPath,
		TenthCertificatePath:      doc.TenthCertificatePath,
		TwelfthCertificatePath:    doc.TwelfthCertificatePath,
		DiplomaCertificatePath:    doc.DiplomaCertificatePath,
		DegreeCertificatePath:     doc.DegreeCertificatePath,
		ExperienceCertificatePath: doc.ExperienceCertificatePath,
		OtherCertificatePaths:     append([]string(nil), doc.OtherCertificatePaths...),

		Status:      doc.Status,
		SubmittedAt: doc.SubmittedAt,
	}

	for _, edu := range doc.Educations {
		record.Educations = append(record.Educations, admindomain.EducationRecord(edu))
	}
	for _, exp := range doc.WorkExperiences {
		record.WorkExperiences = append(record.WorkExperiences, admindomain.WorkExperienceRecord(exp))
	}
	return record
}

func recordToDocument(record admindomain.SubmissionRecord) ApplicationDocument {
	doc := ApplicationDocument{
		FullName:         record.FullName,
		FatherName:       record.FatherName,
		Email:            record.Email,
		Phone:            record.Phone,
		CurrentAddress:   record.CurrentAddress,
		CurrentCity:      record.CurrentCity,
		CurrentState:     record.CurrentState,
		CurrentCountry:   record.CurrentCountry,
		PermanentAddress: record.PermanentAddress,
		PermanentCity:    record.PermanentCity,
		PermanentState:   record.PermanentState,
		PermanentCountry: record.PermanentCountry,

		Position:        record.Position,
		Experience:      record.Experience,
		OtherExperience: record.OtherExperience,

		Availability:      record.Availability,
		OtherAvailability: record.OtherAvailability,
		ExpectedSalary:    record.ExpectedSalary,
		CoverLetter:       record.CoverLetter,
		LinkedIn:          record.LinkedIn,
		Portfolio:         record.Portfolio,

		IsFresher: record.IsFresher,

		ResumePath:                record.ResumePath,
		AadharCardPath:            record.AadharCardPath,
		PanCardPath:               record.PanCardPath,
		PassportPath:              record.PassportPath,
		TenthCertificatePath:      record.TenthCertificatePath,
		TwelfthCertificatePath:    record.TwelfthCertificatePath,
		DiplomaCertificatePath:    record.DiplomaCertificatePath,
		DegreeCertificatePath:     record.DegreeCertificatePath,
		ExperienceCertificatePath: record.ExperienceCertificatePath,
		OtherCertificatePaths:     append([]string(nil), record.OtherCertificatePaths...),

		Status:      record.Status,
		SubmittedAt: record.SubmittedAt,
	}

	if record.ID != "" {
		if objectID, err := primitive.ObjectIDFromHex(record.ID); err == nil {
			doc.ID = objectID
		}
	}

	for _, edu := range record.Educations {
		doc.Educations = append(doc.Educations, EducationDocument(edu))
	}
	for _, exp := range record.WorkExperiences {
		doc.WorkExperiences = append(doc.WorkExperiences, WorkExperienceDocument(exp))
	}
	return doc
}
