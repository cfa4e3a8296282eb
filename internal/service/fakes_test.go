package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"ecotrack/internal/model"
	"ecotrack/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. Updates only apply the $set keys the
// services actually write.

type fakeUserRepo struct {
	users []*model.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, generic.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, generic.ErrNotFound
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*model.User, error) {
	byID := make(map[primitive.ObjectID]*model.User)
	for _, id := range ids {
		for _, u := range f.users {
			if u.ID == id {
				byID[id] = u
			}
		}
	}
	return byID, nil
}

func (f *fakeUserRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (*model.User, error) {
	user, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if set, ok := update["$set"].(bson.M); ok {
		if v, ok := set["fullName"].(string); ok {
			user.FullName = v
		}
		if v, ok := set["avatarUrl"].(string); ok {
			user.AvatarURL = v
		}
		if v, ok := set["bio"].(string); ok {
			user.Bio = v
		}
		if v, ok := set["updatedAt"].(time.Time); ok {
			user.UpdatedAt = v
		}
	}
	return user, nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeAttemptRepo struct {
	attempts []*model.QuizAttempt
}

func (f *fakeAttemptRepo) Create(ctx context.Context, attempt *model.QuizAttempt) error {
	attempt.ID = primitive.NewObjectID()
	f.attempts = append(f.attempts, attempt)
	return nil
}

func (f *fakeAttemptRepo) FindByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*model.QuizAttempt, error) {
	all, _ := f.FindAllByUser(ctx, userID)
	if int64(len(all)) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeAttemptRepo) FindAllByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.QuizAttempt, error) {
	var out []*model.QuizAttempt
	for _, a := range f.attempts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttemptRepo) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	all, _ := f.FindAllByUser(ctx, userID)
	return int64(len(all)), nil
}

func (f *fakeAttemptRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.attempts)), nil
}

func (f *fakeAttemptRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeCarbonRepo struct {
	footprints []*model.CarbonFootprint
}

func (f *fakeCarbonRepo) Create(ctx context.Context, footprint *model.CarbonFootprint) error {
	footprint.ID = primitive.NewObjectID()
	f.footprints = append(f.footprints, footprint)
	return nil
}

func (f *fakeCarbonRepo) FindByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*model.CarbonFootprint, error) {
	var out []*model.CarbonFootprint
	for _, fp := range f.footprints {
		if fp.UserID == userID {
			out = append(out, fp)
		}
	}
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeCarbonRepo) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	var n int64
	for _, fp := range f.footprints {
		if fp.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeCarbonRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeChallengeRepo struct {
	challenges []*model.DailyChallenge
}

func (f *fakeChallengeRepo) Create(ctx context.Context, challenge *model.DailyChallenge) error {
	challenge.ID = primitive.NewObjectID()
	f.challenges = append(f.challenges, challenge)
	return nil
}

func (f *fakeChallengeRepo) FindByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*model.DailyChallenge, error) {
	var out []*model.DailyChallenge
	for _, c := range f.challenges {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeChallengeRepo) UpdateOwned(ctx context.Context, id, userID primitive.ObjectID, update bson.M) (*model.DailyChallenge, error) {
	for _, c := range f.challenges {
		if c.ID == id && c.UserID == userID {
			if set, ok := update["$set"].(bson.M); ok {
				if v, ok := set["completed"].(bool); ok {
					c.Completed = v
				}
				if v, ok := set["completedAt"].(time.Time); ok {
					c.CompletedAt = &v
				}
			}
			return c, nil
		}
	}
	return nil, generic.ErrNotFound
}

func (f *fakeChallengeRepo) DeleteOwned(ctx context.Context, id, userID primitive.ObjectID) error {
	for i, c := range f.challenges {
		if c.ID == id && c.UserID == userID {
			f.challenges = append(f.challenges[:i], f.challenges[i+1:]...)
			return nil
		}
	}
	return generic.ErrNotFound
}

func (f *fakeChallengeRepo) CountCompletedByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	var n int64
	for _, c := range f.challenges {
		if c.UserID == userID && c.Completed {
			n++
		}
	}
	return n, nil
}

func (f *fakeChallengeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.challenges)), nil
}

func (f *fakeChallengeRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakePostRepo struct {
	posts []*model.CommunityPost
}

func (f *fakePostRepo) Create(ctx context.Context, post *model.CommunityPost) error {
	post.ID = primitive.NewObjectID()
	f.posts = append(f.posts, post)
	return nil
}

func (f *fakePostRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.CommunityPost, error) {
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, generic.ErrNotFound
}

func (f *fakePostRepo) FindAllSorted(ctx context.Context) ([]*model.CommunityPost, error) {
	out := append([]*model.CommunityPost(nil), f.posts...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakePostRepo) FindOwned(ctx context.Context, id, userID primitive.ObjectID) (*model.CommunityPost, error) {
	post, err := f.FindByID(ctx, id)
	if err != nil || post.UserID != userID {
		return nil, generic.ErrNotFound
	}
	return post, nil
}

func (f *fakePostRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	for i, p := range f.posts {
		if p.ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return generic.ErrNotFound
}

func (f *fakePostRepo) IncrementLikes(ctx context.Context, id primitive.ObjectID) (*model.CommunityPost, error) {
	post, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Likes++
	return post, nil
}

func (f *fakePostRepo) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	var n int64
	for _, p := range f.posts {
		if p.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakePostRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.posts)), nil
}

type fakeCommentRepo struct {
	comments []*model.PostComment
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *model.PostComment) error {
	comment.ID = primitive.NewObjectID()
	f.comments = append(f.comments, comment)
	return nil
}

func (f *fakeCommentRepo) FindByPost(ctx context.Context, postID primitive.ObjectID) ([]*model.PostComment, error) {
	var out []*model.PostComment
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	var kept []*model.PostComment
	var removed int64
	for _, c := range f.comments {
		if c.PostID == postID {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	f.comments = kept
	return removed, nil
}

func (f *fakeCommentRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeBadgeRepo struct {
	badges []*model.Badge
}

func (f *fakeBadgeRepo) Create(ctx context.Context, badge *model.Badge) error {
	badge.ID = primitive.NewObjectID()
	f.badges = append(f.badges, badge)
	return nil
}

func (f *fakeBadgeRepo) FindAll(ctx context.Context) ([]*model.Badge, error) {
	return f.badges, nil
}

func (f *fakeBadgeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.badges)), nil
}

type fakeUserBadgeRepo struct {
	earned []*model.UserBadge
}

func (f *fakeUserBadgeRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.UserBadge, error) {
	var out []*model.UserBadge
	for _, ub := range f.earned {
		if ub.UserID == userID {
			out = append(out, ub)
		}
	}
	return out, nil
}

// InsertMany mirrors the unique (userId, badgeId) index: a duplicate in the
// batch rejects the whole batch.
func (f *fakeUserBadgeRepo) InsertMany(ctx context.Context, userBadges []*model.UserBadge) error {
	for _, ub := range userBadges {
		for _, existing := range f.earned {
			if existing.UserID == ub.UserID && existing.BadgeID == ub.BadgeID {
				return errors.New("duplicate key")
			}
		}
	}
	now := time.Now()
	for _, ub := range userBadges {
		ub.ID = primitive.NewObjectID()
		if ub.EarnedAt.IsZero() {
			ub.EarnedAt = now
		}
		f.earned = append(f.earned, ub)
	}
	return nil
}

func (f *fakeUserBadgeRepo) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	all, _ := f.FindByUser(ctx, userID)
	return int64(len(all)), nil
}

func (f *fakeUserBadgeRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeAreaRepo struct {
	areas []*model.PlantingArea
}

func (f *fakeAreaRepo) Create(ctx context.Context, area *model.PlantingArea) error {
	area.ID = primitive.NewObjectID()
	f.areas = append(f.areas, area)
	return nil
}

func (f *fakeAreaRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.PlantingArea, error) {
	for _, a := range f.areas {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, generic.ErrNotFound
}

func (f *fakeAreaRepo) FindAll(ctx context.Context) ([]*model.PlantingArea, error) {
	return f.areas, nil
}

func (f *fakeAreaRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (*model.PlantingArea, error) {
	area, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if set, ok := update["$set"].(bson.M); ok {
		if v, ok := set["isPlanted"].(bool); ok {
			area.IsPlanted = v
		}
		if v, ok := set["updatedAt"].(time.Time); ok {
			area.UpdatedAt = v
		}
	}
	return area, nil
}

func (f *fakeAreaRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	for i, a := range f.areas {
		if a.ID == id {
			f.areas = append(f.areas[:i], f.areas[i+1:]...)
			return nil
		}
	}
	return generic.ErrNotFound
}

type fakeTreeRepo struct {
	trees []*model.PlantedTree
}

func (f *fakeTreeRepo) Create(ctx context.Context, tree *model.PlantedTree) error {
	tree.ID = primitive.NewObjectID()
	f.trees = append(f.trees, tree)
	return nil
}

func (f *fakeTreeRepo) FindByArea(ctx context.Context, areaID primitive.ObjectID) ([]*model.PlantedTree, error) {
	var out []*model.PlantedTree
	for _, t := range f.trees {
		if t.PlantingAreaID == areaID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTreeRepo) FindAllSorted(ctx context.Context) ([]*model.PlantedTree, error) {
	out := append([]*model.PlantedTree(nil), f.trees...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].PlantedAt.After(out[j].PlantedAt) })
	return out, nil
}

func (f *fakeTreeRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.PlantedTree, error) {
	var out []*model.PlantedTree
	for _, t := range f.trees {
		if t.PlantedBy == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTreeRepo) DeleteByArea(ctx context.Context, areaID primitive.ObjectID) (int64, error) {
	var kept []*model.PlantedTree
	var removed int64
	for _, t := range f.trees {
		if t.PlantingAreaID == areaID {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	f.trees = kept
	return removed, nil
}

func (f *fakeTreeRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeQuestionRepo struct {
	questions []*model.QuizQuestion
}

func (f *fakeQuestionRepo) Create(ctx context.Context, question *model.QuizQuestion) error {
	question.ID = primitive.NewObjectID()
	f.questions = append(f.questions, question)
	return nil
}

func (f *fakeQuestionRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.QuizQuestion, error) {
	for _, q := range f.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, generic.ErrNotFound
}

func (f *fakeQuestionRepo) FindActive(ctx context.Context, limit int64) ([]*model.QuizQuestion, error) {
	var out []*model.QuizQuestion
	for _, q := range f.questions {
		if q.IsActive {
			out = append(out, q)
		}
	}
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeQuestionRepo) FindAll(ctx context.Context) ([]*model.QuizQuestion, error) {
	return f.questions, nil
}

func (f *fakeQuestionRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (*model.QuizQuestion, error) {
	question, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if set, ok := update["$set"].(bson.M); ok {
		if v, ok := set["isActive"].(bool); ok {
			question.IsActive = v
		}
		if v, ok := set["questionText"].(string); ok {
			question.QuestionText = v
		}
		if v, ok := set["answers"].([]model.Answer); ok {
			question.Answers = v
		}
	}
	return question, nil
}

func (f *fakeQuestionRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	for i, q := range f.questions {
		if q.ID == id {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			return nil
		}
	}
	return generic.ErrNotFound
}

func (f *fakeQuestionRepo) EnsureIndexes(ctx context.Context) error { return nil }
