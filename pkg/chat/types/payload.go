package types

import (
	"encoding/json"
	"fmt"

	"portfolio-chat-be/pkg/profile"
)

// ResponseType tags how the frontend should render a reply.
type ResponseType string

const (
	TypeText             ResponseType = "text"
	TypeProjectsList     ResponseType = "projects_list"
	TypeSkillsList       ResponseType = "skills_list"
	TypeEducationList    ResponseType = "education_list"
	TypeExperienceList   ResponseType = "experience_list"
	TypeAchievementsList ResponseType = "achievements_list"
	TypeContactInfo      ResponseType = "contact_info"
)

// Payload is the closed union of reply bodies. Exactly one variant exists
// per structured rendering, plus free text; the tag travels with the value
// so boundary serialization can never lose it.
type Payload interface {
	ResponseType() ResponseType
}

type TextPayload string

type ProjectsPayload []profile.Project

// ProjectPayload is a single project record, used when a specific-item
// search resolved to exactly one match.
type ProjectPayload profile.Project

type SkillsPayload []profile.SkillGroup

type EducationPayload []profile.Education

type ExperiencePayload []profile.Experience

type AchievementsPayload []profile.Achievement

type ContactPayload profile.Contact

type PersonalPayload profile.PersonalInfo

func (TextPayload) ResponseType() ResponseType         { return TypeText }
func (ProjectsPayload) ResponseType() ResponseType     { return TypeProjectsList }
func (ProjectPayload) ResponseType() ResponseType      { return TypeProjectsList }
func (SkillsPayload) ResponseType() ResponseType       { return TypeSkillsList }
func (EducationPayload) ResponseType() ResponseType    { return TypeEducationList }
func (ExperiencePayload) ResponseType() ResponseType   { return TypeExperienceList }
func (AchievementsPayload) ResponseType() ResponseType { return TypeAchievementsList }
func (ContactPayload) ResponseType() ResponseType      { return TypeContactInfo }
func (PersonalPayload) ResponseType() ResponseType     { return TypeText }

// ChatResponse is the pipeline's sole output value. It is rebuilt on every
// turn and always carries a non-empty session identifier.
type ChatResponse struct {
	Type      ResponseType `json:"type"`
	Data      Payload      `json:"data"`
	SessionID string       `json:"session_id"`
}

// WithSession returns a copy of the response bound to the given session id.
// Cache templates are stored with an empty session and stamped at read time.
func (r ChatResponse) WithSession(sessionID string) ChatResponse {
	return ChatResponse{Type: r.Type, Data: r.Data, SessionID: sessionID}
}

// Envelope is the {type, data} wire form used both for HTTP responses and
// for serialized semantic-cache entries.
type Envelope struct {
	Type ResponseType    `json:"type"`
	Data json.RawMessage `json:"data"`
}

// MarshalEnvelope serializes a typed payload preserving its tag.
func MarshalEnvelope(t ResponseType, p Payload) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return json.Marshal(Envelope{Type: t, Data: data})
}

// UnmarshalEnvelope parses a stored {type, data} envelope back into a typed
// payload. Anything that does not parse as a known structured shape comes
// back as plain text, so a malformed cache entry degrades instead of failing.
func UnmarshalEnvelope(raw []byte) (ResponseType, Payload, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return TypeText, TextPayload(string(raw)), nil
	}
	payload, err := decodeData(env.Type, env.Data)
	if err != nil {
		return TypeText, textFromRaw(env.Data), nil
	}
	return env.Type, payload, nil
}

func decodeData(t ResponseType, data json.RawMessage) (Payload, error) {
	switch t {
	case TypeProjectsList:
		var list ProjectsPayload
		if err := json.Unmarshal(data, &list); err == nil {
			return list, nil
		}
		// A single record may have been stored under the list tag.
		var one ProjectPayload
		if err := json.Unmarshal(data, &one); err != nil {
			return nil, err
		}
		return one, nil
	case TypeSkillsList:
		var p SkillsPayload
		return p, json.Unmarshal(data, &p)
	case TypeEducationList:
		var p EducationPayload
		return p, json.Unmarshal(data, &p)
	case TypeExperienceList:
		var p ExperiencePayload
		return p, json.Unmarshal(data, &p)
	case TypeAchievementsList:
		var p AchievementsPayload
		return p, json.Unmarshal(data, &p)
	case TypeContactInfo:
		var p ContactPayload
		return p, json.Unmarshal(data, &p)
	case TypeText:
		return textFromRaw(data), nil
	default:
		return nil, fmt.Errorf("unknown response type %q", t)
	}
}

func textFromRaw(data json.RawMessage) TextPayload {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return TextPayload(s)
	}
	return TextPayload(string(data))
}
