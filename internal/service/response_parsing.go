package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/zprintln/AdMaxxer-Project/internal/models"
)

var (
	jsonFenceRe = regexp.MustCompile("```json\\s*")
	fenceRe     = regexp.MustCompile("```\\s*")
)

// requiredSceneFields must be present and non-empty on every generated scene.
var requiredSceneFields = []string{"scene", "duration", "visual", "script"}

// stripCodeFences removes Markdown code fences around an LLM reply.
func stripCodeFences(s string) string {
	s = jsonFenceRe.ReplaceAllString(s, "")
	s = fenceRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// decodeJSONPayload unmarshals the reply into out. When the cleaned reply is
// not valid JSON on its own, the span between the first open and the last
// close delimiter is tried.
func decodeJSONPayload(reply string, open, close byte, out any) error {
	cleaned := stripCodeFences(reply)
	err := json.Unmarshal([]byte(cleaned), out)
	if err == nil {
		return nil
	}
	start := strings.IndexByte(cleaned, open)
	end := strings.LastIndexByte(cleaned, close)
	if start >= 0 && end > start {
		if err2 := json.Unmarshal([]byte(cleaned[start:end+1]), out); err2 == nil {
			return nil
		}
	}
	return fmt.Errorf("%w: LLM returned invalid JSON (%v), response: %s", models.ErrMalformedResponse, err, truncate(reply, 200))
}

// parseStoryboard decodes and validates a storyboard reply. Scenes are
// renumbered from 1 in reply order.
func parseStoryboard(reply string) (models.Storyboard, error) {
	var raw []map[string]any
	if err := decodeJSONPayload(reply, '[', ']', &raw); err != nil {
		var decoded any
		if json.Unmarshal([]byte(stripCodeFences(reply)), &decoded) == nil {
			return nil, fmt.Errorf("%w: storyboard must be an array of scenes", models.ErrMalformedResponse)
		}
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: storyboard is empty", models.ErrMalformedResponse)
	}

	storyboard := make(models.Storyboard, 0, len(raw))
	for i, fields := range raw {
		scene, err := sceneFromFields(i+1, fields)
		if err != nil {
			return nil, err
		}
		scene.Scene = i + 1
		storyboard = append(storyboard, scene)
	}
	return storyboard, nil
}

// parseScene decodes a single-scene reply and forces its number.
func parseScene(reply string, sceneNumber int) (models.Scene, error) {
	var raw map[string]any
	if err := decodeJSONPayload(reply, '{', '}', &raw); err != nil {
		return models.Scene{}, err
	}
	if raw == nil {
		return models.Scene{}, fmt.Errorf("%w: scene must be a JSON object", models.ErrMalformedResponse)
	}
	scene, err := sceneFromFields(sceneNumber, raw)
	if err != nil {
		return models.Scene{}, err
	}
	scene.Scene = sceneNumber
	return scene, nil
}

// parseCreatorStyle decodes a creator style reply.
func parseCreatorStyle(reply string) (models.CreatorStyle, error) {
	var style models.CreatorStyle
	if err := decodeJSONPayload(reply, '{', '}', &style); err != nil {
		return models.CreatorStyle{}, err
	}
	return style, nil
}

func sceneFromFields(position int, fields map[string]any) (models.Scene, error) {
	for _, f := range requiredSceneFields {
		if isBlank(fields[f]) {
			return models.Scene{}, &models.SceneFieldError{Scene: position, Field: f}
		}
	}

	scene := models.Scene{
		Visual: textValue(fields["visual"]),
		Script: textValue(fields["script"]),
		Notes:  textValue(fields["notes"]),
	}
	if n, ok := fields["scene"].(float64); ok {
		scene.Scene = int(n)
	} else if n, err := strconv.Atoi(textValue(fields["scene"])); err == nil {
		scene.Scene = n
	}
	switch d := fields["duration"].(type) {
	case float64:
		scene.Duration = models.FormatSeconds(int(d))
	default:
		scene.Duration = textValue(d)
	}
	return scene, nil
}

// isBlank mirrors a falsy check: missing, null, "", 0 and false are blank.
func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case float64:
		return t == 0
	case bool:
		return !t
	default:
		return false
	}
}

func textValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(data)
	}
}
