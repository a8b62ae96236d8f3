// コマンド seed はローカル開発用のサンプル応募データを MongoDB へ投入する。
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	mongodoc "github.com/hireline/job-application-services/api/internal/infrastructure/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedOptions struct {
	mongoURI   string
	database   string
	collection string
	count      int
	drop       bool
	randomSeed int64
}

var (
	firstNames = []string{"Aarav", "Vivaan", "Aditya", "Ananya", "Diya", "Ishaan", "Kavya", "Rohan", "Sneha", "Priya", "Arjun", "Meera"}
	lastNames  = []string{"Sharma", "Patel", "Reddy", "Gupta", "Singh", "Kumar", "Iyer", "Nair", "Das", "Joshi"}
	positions  = []string{"Software Engineer", "Data Analyst", "Electrician", "Site Supervisor", "Accountant", "HR Executive", "Quality Inspector", "Machine Operator"}
	cities     = []string{"Mumbai", "Pune", "Bengaluru", "Chennai", "Hyderabad", "Ahmedabad", "Jaipur", "Kochi"}
	levels     = []string{"10th", "12th", "iti", "diploma", "btech", "be", "mba", "bachelor"}
	brackets   = []string{"0-1", "1-3", "3-5", "5-10", "10+"}
	statuses   = []string{"pending", "pending", "pending", "reviewed", "shortlisted", "rejected"}
	companies  = []string{"Tata Motors", "Infosys", "L&T Construction", "Wipro", "Reliance Industries", "Bharat Electronics"}
)

func main() {
	opts := parseFlags()
	rng := rand.New(rand.NewSource(opts.randomSeed))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(opts.mongoURI)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("MongoDB 接続に失敗しました: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("MongoDB 切断時にエラー: %v", err)
		}
	}()

	collection := client.Database(opts.database).Collection(opts.collection)

	if opts.drop {
		if err := collection.Drop(ctx); err != nil {
			log.Fatalf("コレクション削除に失敗しました: %v", err)
		}
		log.Printf("コレクション %s を削除しました", opts.collection)
	}

	docs := make([]interface{}, 0, opts.count)
	for i := 0; i < opts.count; i++ {
		docs = append(docs, generateApplication(rng))
	}

	result, err := collection.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("サンプルデータ投入に失敗しました: %v", err)
	}
	log.Printf("応募ドキュメントを %d 件投入しました", len(result.InsertedIDs))

	count, err := collection.CountDocuments(ctx, bson.D{})
	if err == nil {
		log.Printf("コレクション %s の総件数: %d", opts.collection, count)
	}
}

func parseFlags() seedOptions {
	opts := seedOptions{}
	flag.StringVar(&opts.mongoURI, "uri", "mongodb://localhost:27017", "MongoDB 接続 URI")
	flag.StringVar(&opts.database, "db", "hireline", "データベース名")
	flag.StringVar(&opts.collection, "collection", "applications", "応募コレクション名")
	flag.IntVar(&opts.count, "count", 50, "投入する応募数")
	flag.BoolVar(&opts.drop, "drop", false, "投入前にコレクションを削除する")
	flag.Int64Var(&opts.randomSeed, "seed", time.Now().UnixNano(), "乱数シード")
	flag.Parse()
	return opts
}

// generateApplication は過去 45 日に分散した応募 1 件を生成する。
func generateApplication(rng *rand.Rand) mongodoc.ApplicationDocument {
	first := firstNames[rng.Intn(len(firstNames))]
	last := lastNames[rng.Intn(len(lastNames))]
	city := cities[rng.Intn(len(cities))]
	level := levels[rng.Intn(len(levels))]
	submittedAt := time.Now().UTC().Add(-time.Duration(rng.Intn(45*24)) * time.Hour)

	doc := mongodoc.ApplicationDocument{
		ID:               primitive.NewObjectID(),
		FullName:         first + " " + last,
		FatherName:       firstNames[rng.Intn(len(firstNames))] + " " + last,
		Email:            fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), rng.Intn(100)),
		Phone:            fmt.Sprintf("9%09d", rng.Intn(1_000_000_000)),
		CurrentCity:      city,
		CurrentState:     "Maharashtra",
		CurrentCountry:   "India",
		PermanentCity:    city,
		PermanentState:   "Maharashtra",
		PermanentCountry: "India",
		Position:         positions[rng.Intn(len(positions))],
		Experience:       brackets[rng.Intn(len(brackets))],
		Availability:     "immediate",
		ExpectedSalary:   fmt.Sprintf("%d000", 25+rng.Intn(50)),
		IsFresher:        rng.Intn(5) == 0,
		Status:           statuses[rng.Intn(len(statuses))],
		SubmittedAt:      submittedAt,
		Educations: []mongodoc.EducationDocument{
			{
				Level:       level,
				SchoolName:  city + " Institute of Technology",
				Percentage:  fmt.Sprintf("%d%%", 55+rng.Intn(40)),
				PassingYear: fmt.Sprintf("%d", 2010+rng.Intn(14)),
			},
		},
	}

	if doc.IsFresher {
		return doc
	}

	doc.WorkExperiences = []mongodoc.WorkExperienceDocument{
		{
			Company:          companies[rng.Intn(len(companies))],
			JobTitle:         doc.Position,
			StartDate:        submittedAt.AddDate(-2, 0, 0).Format("2006-01"),
			CurrentlyWorking: rng.Intn(2) == 0,
			Department:       "private",
			Description:      "Handled day-to-day responsibilities of the role.",
		},
	}
	if !doc.WorkExperiences[0].CurrentlyWorking {
		doc.WorkExperiences[0].EndDate = submittedAt.AddDate(0, -1, 0).Format("2006-01")
	}
	return doc
}
