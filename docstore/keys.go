package docstore

import (
	"fmt"
	"strconv"
	"time"

	"github.com/DHANUSH-web/commercial-catalog/entity"
)

// Key layout. Every document is a hash; sets and one sorted set act as
// secondary indexes so filtering stays on the server.
//
//	seq:user / seq:est / seq:att      id counters
//	user:{id}, est:{id}, att:{id}     document hashes
//	idx:username, idx:email           username/email -> user id
//	est:ids                           set of all establishment ids
//	est:cat:{category}                set per category
//	est:loc:{location}                set per location
//	est:rating                        zset, score = numeric rating
//	est:{id}:atts                     set of attachment ids
func userKey(id uint) string    { return fmt.Sprintf("user:%d", id) }
func estKey(id uint) string     { return fmt.Sprintf("est:%d", id) }
func attKey(id uint) string     { return fmt.Sprintf("att:%d", id) }
func catKey(c string) string    { return "est:cat:" + c }
func locKey(l string) string    { return "est:loc:" + l }
func estAttsKey(id uint) string { return fmt.Sprintf("est:%d:atts", id) }

const (
	seqUser      = "seq:user"
	seqEst       = "seq:est"
	seqAtt       = "seq:att"
	idxUsername  = "idx:username"
	idxEmail     = "idx:email"
	estIDs       = "est:ids"
	estRatingIdx = "est:rating"
)

const createdLayout = time.RFC3339Nano

func parseID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad id %q: %w", s, err)
	}
	return uint(n), nil
}

func parseCreated(s string) time.Time {
	t, err := time.Parse(createdLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func userFields(u *entity.User) map[string]any {
	return map[string]any{
		"username":  u.Username,
		"email":     u.Email,
		"password":  u.Password,
		"name":      u.Name,
		"photo_url": u.PhotoURL,
		"created":   u.CreatedAt.Format(createdLayout),
	}
}

func userFromHash(id uint, m map[string]string) *entity.User {
	u := &entity.User{
		Username: m["username"],
		Email:    m["email"],
		Password: m["password"],
		Name:     m["name"],
		PhotoURL: m["photo_url"],
	}
	u.ID = id
	u.CreatedAt = parseCreated(m["created"])
	return u
}

func estFields(e *entity.Establishment) map[string]any {
	return map[string]any{
		"name":        e.Name,
		"category":    e.Category,
		"location":    e.Location,
		"description": e.Description,
		"rating":      e.Rating,
		"cover_image": e.CoverImage,
		"user_id":     strconv.FormatUint(uint64(e.UserID), 10),
		"created":     e.CreatedAt.Format(createdLayout),
	}
}

func estFromHash(id uint, m map[string]string) *entity.Establishment {
	e := &entity.Establishment{
		Name:        m["name"],
		Category:    m["category"],
		Location:    m["location"],
		Description: m["description"],
		Rating:      m["rating"],
		CoverImage:  m["cover_image"],
	}
	e.ID = id
	e.CreatedAt = parseCreated(m["created"])
	if uid, err := parseID(m["user_id"]); err == nil {
		e.UserID = uid
	}
	return e
}

func attFields(a *entity.Attachment) map[string]any {
	return map[string]any{
		"file_name":        a.FileName,
		"file_type":        a.FileType,
		"file_size":        a.FileSize,
		"file_path":        a.FilePath,
		"storage_key":      a.StorageKey,
		"establishment_id": strconv.FormatUint(uint64(a.EstablishmentID), 10),
		"user_id":          strconv.FormatUint(uint64(a.UserID), 10),
		"created":          a.CreatedAt.Format(createdLayout),
	}
}

func attFromHash(id uint, m map[string]string) *entity.Attachment {
	a := &entity.Attachment{
		FileName:   m["file_name"],
		FileType:   m["file_type"],
		FileSize:   m["file_size"],
		FilePath:   m["file_path"],
		StorageKey: m["storage_key"],
	}
	a.ID = id
	a.CreatedAt = parseCreated(m["created"])
	if eid, err := parseID(m["establishment_id"]); err == nil {
		a.EstablishmentID = eid
	}
	if uid, err := parseID(m["user_id"]); err == nil {
		a.UserID = uid
	}
	return a
}

func ratingScore(r string) float64 {
	f, err := strconv.ParseFloat(r, 64)
	if err != nil {
		return 0
	}
	return f
}
