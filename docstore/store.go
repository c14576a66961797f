package docstore

import (
	"context"
	"sort"
	"strconv"

	"github.com/DHANUSH-web/commercial-catalog/entity"
	"github.com/DHANUSH-web/commercial-catalog/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Store implements repository.Store over Redis. Documents live in
// hashes; category/location membership sets and a rating sorted set
// let the equality and range filters run as native Redis operations,
// with only the final ordering applied after the documents are loaded.
type Store struct {
	rdb *redis.Client
}

var _ repository.Store = (*Store)(nil)

func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// ----- Users -----

func (s *Store) CreateUser(ctx context.Context, user *entity.User) error {
	taken, err := s.rdb.HExists(ctx, idxUsername, user.Username).Result()
	if err != nil {
		return err
	}
	if !taken {
		taken, err = s.rdb.HExists(ctx, idxEmail, user.Email).Result()
		if err != nil {
			return err
		}
	}
	if taken {
		return repository.ErrDuplicate
	}

	id, err := s.rdb.Incr(ctx, seqUser).Result()
	if err != nil {
		return err
	}
	user.ID = uint(id)

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, userKey(user.ID), userFields(user))
	pipe.HSet(ctx, idxUsername, user.Username, user.ID)
	pipe.HSet(ctx, idxEmail, user.Email, user.ID)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Store) FindUserByID(ctx context.Context, id uint) (*entity.User, error) {
	m, err := s.rdb.HGetAll(ctx, userKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(m) == 0 {
		return nil, repository.ErrNotFound
	}
	return userFromHash(id, m), nil
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	raw, err := s.rdb.HGet(ctx, idxUsername, username).Result()
	if err == redis.Nil {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	id, err := parseID(raw)
	if err != nil {
		return nil, err
	}
	return s.FindUserByID(ctx, id)
}

// ----- Establishments -----

func (s *Store) CreateEstablishment(ctx context.Context, est *entity.Establishment) error {
	if est.Rating == "" {
		est.Rating = entity.DefaultRating
	}
	id, err := s.rdb.Incr(ctx, seqEst).Result()
	if err != nil {
		return err
	}
	est.ID = uint(id)

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, estKey(est.ID), estFields(est))
	pipe.SAdd(ctx, estIDs, est.ID)
	pipe.SAdd(ctx, catKey(est.Category), est.ID)
	pipe.SAdd(ctx, locKey(est.Location), est.ID)
	pipe.ZAdd(ctx, estRatingIdx, redis.Z{Score: ratingScore(est.Rating), Member: strconv.FormatUint(uint64(est.ID), 10)})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Store) FindEstablishmentByID(ctx context.Context, id uint) (*entity.Establishment, error) {
	m, err := s.rdb.HGetAll(ctx, estKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(m) == 0 {
		return nil, repository.ErrNotFound
	}
	return estFromHash(id, m), nil
}

// ListEstablishments resolves the filter to an id set server-side:
// equality filters are index sets, the rating bucket is a ZRANGESTORE
// by score, and multiple criteria meet in a ZINTERSTORE. Ordering is
// applied to the loaded documents with the same comparison rules as
// the relational store (ratings compare as strings).
func (s *Store) ListEstablishments(ctx context.Context, filter repository.EstablishmentFilter) ([]entity.Establishment, error) {
	var keys, tmp []string
	defer func() {
		if len(tmp) > 0 {
			s.rdb.Del(context.WithoutCancel(ctx), tmp...)
		}
	}()

	if cat, ok := filter.CategoryFilter(); ok {
		keys = append(keys, catKey(cat))
	}
	if loc, ok := filter.LocationFilter(); ok {
		keys = append(keys, locKey(loc))
	}
	if min, exact, ok := filter.RatingBucket(); ok {
		k := "tmp:rating:" + uuid.NewString()
		score := strconv.FormatFloat(ratingScore(min), 'f', -1, 64)
		args := redis.ZRangeArgs{Key: estRatingIdx, ByScore: true, Start: score, Stop: "+inf"}
		if exact {
			args.Stop = score
		}
		if err := s.rdb.ZRangeStore(ctx, k, args).Err(); err != nil {
			return nil, err
		}
		tmp = append(tmp, k)
		keys = append(keys, k)
	}

	var ids []string
	var err error
	switch len(keys) {
	case 0:
		ids, err = s.rdb.SMembers(ctx, estIDs).Result()
	case 1:
		// a single set or zset; members either way
		ids, err = s.members(ctx, keys[0])
	default:
		dst := "tmp:inter:" + uuid.NewString()
		tmp = append(tmp, dst)
		if err = s.rdb.ZInterStore(ctx, dst, &redis.ZStore{Keys: keys}).Err(); err != nil {
			return nil, err
		}
		ids, err = s.rdb.ZRange(ctx, dst, 0, -1).Result()
	}
	if err != nil {
		return nil, err
	}

	ests := make([]entity.Establishment, 0, len(ids))
	for _, raw := range ids {
		id, perr := parseID(raw)
		if perr != nil {
			return nil, perr
		}
		est, ferr := s.FindEstablishmentByID(ctx, id)
		if ferr == repository.ErrNotFound {
			continue // index entry raced a delete
		}
		if ferr != nil {
			return nil, ferr
		}
		ests = append(ests, *est)
	}

	sortEstablishments(ests, filter.SortBy)
	return ests, nil
}

func (s *Store) members(ctx context.Context, key string) ([]string, error) {
	t, err := s.rdb.Type(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if t == "zset" {
		return s.rdb.ZRange(ctx, key, 0, -1).Result()
	}
	return s.rdb.SMembers(ctx, key).Result()
}

func sortEstablishments(ests []entity.Establishment, sortBy string) {
	switch sortBy {
	case repository.SortNewest, "createdAt":
		sort.SliceStable(ests, func(i, j int) bool { return ests[i].CreatedAt.After(ests[j].CreatedAt) })
	case repository.SortHighestRated:
		sort.SliceStable(ests, func(i, j int) bool { return ests[i].Rating > ests[j].Rating })
	case repository.SortNameAsc:
		sort.SliceStable(ests, func(i, j int) bool { return ests[i].Name < ests[j].Name })
	case repository.SortNameDesc:
		sort.SliceStable(ests, func(i, j int) bool { return ests[i].Name > ests[j].Name })
	}
}

func (s *Store) UpdateEstablishment(ctx context.Context, id uint, updates map[string]any) error {
	cur, err := s.FindEstablishmentByID(ctx, id)
	if err != nil {
		return err
	}

	pipe := s.rdb.TxPipeline()
	if v, ok := updates["category"].(string); ok && v != cur.Category {
		pipe.SRem(ctx, catKey(cur.Category), id)
		pipe.SAdd(ctx, catKey(v), id)
	}
	if v, ok := updates["location"].(string); ok && v != cur.Location {
		pipe.SRem(ctx, locKey(cur.Location), id)
		pipe.SAdd(ctx, locKey(v), id)
	}
	if v, ok := updates["rating"].(string); ok && v != cur.Rating {
		pipe.ZAdd(ctx, estRatingIdx, redis.Z{Score: ratingScore(v), Member: strconv.FormatUint(uint64(id), 10)})
	}
	pipe.HSet(ctx, estKey(id), updates)
	_, err = pipe.Exec(ctx)
	return err
}

// DeleteEstablishment removes the document, its index entries and all
// of its attachments, attachments first.
func (s *Store) DeleteEstablishment(ctx context.Context, id uint) error {
	cur, err := s.FindEstablishmentByID(ctx, id)
	if err != nil {
		return err
	}

	attIDs, err := s.rdb.SMembers(ctx, estAttsKey(id)).Result()
	if err != nil {
		return err
	}

	pipe := s.rdb.TxPipeline()
	for _, raw := range attIDs {
		if aid, perr := parseID(raw); perr == nil {
			pipe.Del(ctx, attKey(aid))
		}
	}
	pipe.Del(ctx, estAttsKey(id))
	pipe.SRem(ctx, catKey(cur.Category), id)
	pipe.SRem(ctx, locKey(cur.Location), id)
	pipe.ZRem(ctx, estRatingIdx, strconv.FormatUint(uint64(id), 10))
	pipe.SRem(ctx, estIDs, id)
	pipe.Del(ctx, estKey(id))
	_, err = pipe.Exec(ctx)
	return err
}

// ----- Attachments -----

func (s *Store) CreateAttachment(ctx context.Context, att *entity.Attachment) error {
	exists, err := s.rdb.Exists(ctx, estKey(att.EstablishmentID)).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return repository.ErrNotFound
	}

	id, err := s.rdb.Incr(ctx, seqAtt).Result()
	if err != nil {
		return err
	}
	att.ID = uint(id)

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, attKey(att.ID), attFields(att))
	pipe.SAdd(ctx, estAttsKey(att.EstablishmentID), att.ID)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Store) FindAttachmentByID(ctx context.Context, id uint) (*entity.Attachment, error) {
	m, err := s.rdb.HGetAll(ctx, attKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(m) == 0 {
		return nil, repository.ErrNotFound
	}
	return attFromHash(id, m), nil
}

func (s *Store) ListAttachmentsByEstablishment(ctx context.Context, establishmentID uint) ([]entity.Attachment, error) {
	ids, err := s.rdb.SMembers(ctx, estAttsKey(establishmentID)).Result()
	if err != nil {
		return nil, err
	}

	atts := make([]entity.Attachment, 0, len(ids))
	for _, raw := range ids {
		id, perr := parseID(raw)
		if perr != nil {
			return nil, perr
		}
		att, ferr := s.FindAttachmentByID(ctx, id)
		if ferr == repository.ErrNotFound {
			continue
		}
		if ferr != nil {
			return nil, ferr
		}
		atts = append(atts, *att)
	}
	sort.Slice(atts, func(i, j int) bool { return atts[i].ID < atts[j].ID })
	return atts, nil
}

func (s *Store) DeleteAttachment(ctx context.Context, id uint) error {
	att, err := s.FindAttachmentByID(ctx, id)
	if err != nil {
		return err
	}
	pipe := s.rdb.TxPipeline()
	pipe.SRem(ctx, estAttsKey(att.EstablishmentID), id)
	pipe.Del(ctx, attKey(id))
	_, err = pipe.Exec(ctx)
	return err
}
