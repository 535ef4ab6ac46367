package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
)

const (
	// AnonymousUser marks sessions that were started without a login.
	AnonymousUser = "anonymous"

	responseCodecVersion = 1
	idListCodecVersion   = 1
)

// ResponseMap holds submitted answers keyed by question index. It is
// stored as a versioned JSON document so the on-disk shape can evolve
// without ad hoc parsing.
type ResponseMap map[int]string

type responseEnvelope struct {
	Version   int            `json:"v"`
	Responses map[int]string `json:"responses"`
}

func (m ResponseMap) Value() (driver.Value, error) {
	env := responseEnvelope{Version: responseCodecVersion, Responses: m}
	if env.Responses == nil {
		env.Responses = map[int]string{}
	}
	return json.Marshal(env)
}

func (m *ResponseMap) Scan(value interface{}) error {
	if value == nil {
		*m = ResponseMap{}
		return nil
	}
	data, err := rawJSONBytes(value)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		*m = ResponseMap{}
		return nil
	}
	var env responseEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decode response map: %w", err)
	}
	if env.Version != responseCodecVersion {
		return fmt.Errorf("unsupported response map version %d", env.Version)
	}
	if env.Responses == nil {
		env.Responses = map[int]string{}
	}
	*m = env.Responses
	return nil
}

// IDList is an ordered question id sequence, stored with the same
// versioned envelope convention as ResponseMap.
type IDList []uint

type idListEnvelope struct {
	Version int    `json:"v"`
	IDs     []uint `json:"ids"`
}

func (l IDList) Value() (driver.Value, error) {
	env := idListEnvelope{Version: idListCodecVersion, IDs: l}
	if env.IDs == nil {
		env.IDs = []uint{}
	}
	return json.Marshal(env)
}

func (l *IDList) Scan(value interface{}) error {
	if value == nil {
		*l = IDList{}
		return nil
	}
	data, err := rawJSONBytes(value)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		*l = IDList{}
		return nil
	}
	var env idListEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decode id list: %w", err)
	}
	if env.Version != idListCodecVersion {
		return fmt.Errorf("unsupported id list version %d", env.Version)
	}
	*l = env.IDs
	return nil
}

func rawJSONBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported json column type %T", value)
	}
}

// QuizSession is a step-by-step adaptive quiz instance, distinct from the
// one-shot Assessment. CurrentStep only ever grows; status moves
// active -> completed and never back.
type QuizSession struct {
	UUIDBase
	UserID      string          `gorm:"size:64;index;not null" json:"userId"`
	SessionType string          `gorm:"size:50;not null" json:"sessionType"`
	Status      SessionStatus   `gorm:"size:20;default:'active'" json:"status"`
	CurrentStep int             `gorm:"default:0" json:"currentStep"`
	QuestionIDs IDList          `gorm:"type:json" json:"-"`
	Responses   ResponseMap     `gorm:"type:json" json:"-"`
	Results     json.RawMessage `gorm:"type:json" json:"results,omitempty"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
}

func (QuizSession) TableName() string {
	return "quiz_sessions"
}
