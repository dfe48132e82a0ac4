package models

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUser_JSONKeepsUnknownFields(t *testing.T) {
	var u User
	if err := json.Unmarshal([]byte(`{"email":"a@x.com","role":"admin","premiumTaken":"2026-01-02","visits":3,"score":1.5}`), &u); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if u.Email != "a@x.com" || !u.IsAdmin() {
		t.Fatalf("known fields lost: %+v", u)
	}
	if _, ok := u.Extra["email"]; ok {
		t.Fatalf("known field copied into Extra: %v", u.Extra)
	}
	if u.Extra["premiumTaken"] != "2026-01-02" || u.Extra["visits"] != int64(3) || u.Extra["score"] != 1.5 {
		t.Fatalf("Extra = %#v", u.Extra)
	}

	b, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out["premiumTaken"] != "2026-01-02" || out["email"] != "a@x.com" {
		t.Fatalf("encoded = %s", b)
	}
	if _, ok := out["Extra"]; ok {
		t.Fatalf("Extra leaked as a field: %s", b)
	}
}

func TestArticle_BSONKeepsUnknownFields(t *testing.T) {
	in := Article{
		Title:  "Hello",
		Status: StatusApproved,
		Extra:  bson.M{"subtitle": "More", "meta": bson.M{"words": int32(120)}},
	}
	raw, err := bson.Marshal(in)
	if err != nil {
		t.Fatalf("bson.Marshal: %v", err)
	}
	if got := bson.Raw(raw).Lookup("subtitle").StringValue(); got != "More" {
		t.Fatalf("subtitle not stored at top level: %s", bson.Raw(raw))
	}

	var stored Article
	if err := bson.Unmarshal(raw, &stored); err != nil {
		t.Fatalf("bson.Unmarshal: %v", err)
	}
	if stored.Title != "Hello" || stored.Extra["subtitle"] != "More" {
		t.Fatalf("stored = %+v", stored)
	}
	if _, ok := stored.Extra["title"]; ok {
		t.Fatalf("known field copied into Extra: %v", stored.Extra)
	}

	b, err := json.Marshal(stored)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	meta, ok := out["meta"].(map[string]any)
	if !ok || meta["words"] != float64(120) {
		t.Fatalf("nested document = %s", b)
	}
}

func TestPublisher_JSONWithoutExtra(t *testing.T) {
	b, err := json.Marshal(Publisher{ID: primitive.NewObjectID(), Name: "Daily Star"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(out) != 2 || out["publisher"] != "Daily Star" || out["_id"] == nil {
		t.Fatalf("encoded = %s", b)
	}
}
