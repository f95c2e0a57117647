package mongo

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sessionCollection = "sessions"

// SessionStore is a server-side gorilla/sessions Store backed by the
// "sessions" collection. The browser cookie carries only a signed session
// ID; session values live in the database, encrypted with a second secret.
//
// Expiry is fixed at creation time, not sliding: expires_at is written once
// on insert and never refreshed. Expired documents are treated as absent on
// load and reaped by a TTL index.
type SessionStore struct {
	coll         *mongo.Collection
	cookieCodecs []securecookie.Codec
	dataCodec    securecookie.Codec
	ttl          time.Duration
	opts         *sessions.Options
}

// NewSessionStore builds a SessionStore. signingSecret authenticates the
// session-ID cookie; encryptionSecret protects the stored session payload.
func NewSessionStore(db *mongo.Database, ttl time.Duration, signingSecret, encryptionSecret string) *SessionStore {
	if ttl <= 0 {
		ttl = time.Hour
	}

	cookieCodecs := securecookie.CodecsFromPairs([]byte(signingSecret))
	for _, codec := range cookieCodecs {
		if sc, ok := codec.(*securecookie.SecureCookie); ok {
			sc.MaxAge(int(ttl.Seconds()))
		}
	}

	// sha256 turns an arbitrary-length secret into a valid AES-256 block key.
	blockKey := sha256.Sum256([]byte(encryptionSecret))
	dataCodec := securecookie.New([]byte(encryptionSecret), blockKey[:])
	dataCodec.MaxAge(int(ttl.Seconds()))

	return &SessionStore{
		coll:         db.Collection(sessionCollection),
		cookieCodecs: cookieCodecs,
		dataCodec:    dataCodec,
		ttl:          ttl,
		opts: &sessions.Options{
			Path:     "/",
			MaxAge:   int(ttl.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
	}
}

type sessionDoc struct {
	ID        string    `bson:"_id"`
	Data      string    `bson:"data"`
	ExpiresAt time.Time `bson:"expires_at"`
}

// EnsureIndexes creates the TTL index that reaps expired session documents.
func (s *SessionStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return fmt.Errorf("session ttl index: %w", err)
	}
	return nil
}

// Get returns the cached session for this request, loading it on first use.
func (s *SessionStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New builds a session, restoring server-side state when the request carries
// a valid signed cookie for a live session document. Tampered cookies and
// expired or missing documents all yield a fresh anonymous session.
func (s *SessionStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.opts
	session.Options = &opts
	session.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return session, nil
	}

	var id string
	if err := securecookie.DecodeMulti(name, c.Value, &id, s.cookieCodecs...); err != nil {
		return session, nil
	}
	session.ID = id

	if err := s.load(r.Context(), session); err != nil {
		session.ID = ""
		session.Values = make(map[interface{}]interface{})
		return session, nil
	}
	session.IsNew = false
	return session, nil
}

// Save persists the session and writes the cookie. A negative cookie MaxAge
// destroys the session server-side and expires the cookie.
func (s *SessionStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge < 0 {
		if err := s.destroy(r.Context(), session.ID); err != nil {
			return err
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		id, err := newSessionID()
		if err != nil {
			return err
		}
		session.ID = id
	}

	if err := s.upsert(r.Context(), session); err != nil {
		return err
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.cookieCodecs...)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

func (s *SessionStore) load(ctx context.Context, session *sessions.Session) error {
	var doc sessionDoc
	if err := s.coll.FindOne(ctx, bson.M{"_id": session.ID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return err
		}
		return fmt.Errorf("load session: %w", err)
	}

	// The TTL monitor only runs periodically; enforce expiry on read too.
	if time.Now().After(doc.ExpiresAt) {
		return mongo.ErrNoDocuments
	}

	return securecookie.DecodeMulti(session.Name(), doc.Data, &session.Values, s.dataCodec)
}

func (s *SessionStore) upsert(ctx context.Context, session *sessions.Session) error {
	data, err := securecookie.EncodeMulti(session.Name(), session.Values, s.dataCodec)
	if err != nil {
		return fmt.Errorf("encode session data: %w", err)
	}

	// $setOnInsert keeps expiry anchored to creation rather than last write.
	_, err = s.coll.UpdateOne(ctx,
		bson.M{"_id": session.ID},
		bson.M{
			"$set":         bson.M{"data": data},
			"$setOnInsert": bson.M{"expires_at": time.Now().UTC().Add(s.ttl)},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) destroy(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

func newSessionID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
