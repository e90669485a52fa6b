package mongostore

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"oysterkode.backend/internal/domain/entities"
)

// searchFilter ORs a case-insensitive literal substring match over fields.
func searchFilter(search string, fields ...string) bson.A {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	or := bson.A{}
	for _, f := range fields {
		or = append(or, bson.M{f: pattern})
	}
	return or
}

func eventQuery(f entities.EventFilter) bson.M {
	q := bson.M{}
	if s := strings.TrimSpace(f.Search); s != "" {
		q["$or"] = searchFilter(s, "title", "description", "venue")
	}
	if c := strings.TrimSpace(f.Category); c != "" {
		q["category"] = c
	}
	if s := strings.TrimSpace(f.Status); s != "" {
		q["status"] = s
	}
	return q
}

func eventSort(order entities.SortOrder) bson.D {
	dir := 1
	if order == entities.SortPublic {
		dir = -1
	}
	return bson.D{{Key: "date", Value: dir}, {Key: "time", Value: dir}}
}

func memberQuery(f entities.MemberFilter) bson.M {
	q := bson.M{}
	if s := strings.TrimSpace(f.Search); s != "" {
		q["$or"] = searchFilter(s, "name", "role")
	}
	if d := strings.TrimSpace(f.Department); d != "" {
		q["department"] = d
	}
	if y := strings.TrimSpace(f.Year); y != "" {
		q["year"] = y
	}
	return q
}

var memberSort = bson.D{{Key: "featured", Value: -1}, {Key: "name", Value: 1}}

func projectQuery(f entities.ProjectFilter) bson.M {
	q := bson.M{}
	if s := strings.TrimSpace(f.Search); s != "" {
		q["$or"] = searchFilter(s, "title", "description")
	}
	if c := strings.TrimSpace(f.Category); c != "" {
		q["category"] = c
	}
	return q
}

var projectSort = bson.D{{Key: "featured", Value: -1}, {Key: "title", Value: 1}}

var contactSort = bson.D{{Key: "createdAt", Value: -1}}
