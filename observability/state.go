package observability

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
)

type instanceState struct {
	InstanceID string `json:"instance_id"`
}

// LoadOrCreateInstanceID returns the persistent instance id stored at path,
// generating and writing a new one on first run.
func LoadOrCreateInstanceID(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			state := instanceState{InstanceID: uuid.New().String()}
			newData, err := json.MarshalIndent(state, "", "  ")
			if err != nil {
				return "", fmt.Errorf("failed to marshal new state: %w", err)
			}
			if err := os.WriteFile(path, newData, 0644); err != nil {
				return "", fmt.Errorf("failed to write state file: %w", err)
			}
			log.Printf("New state file created with instance id: %s", state.InstanceID)
			return state.InstanceID, nil
		}
		return "", fmt.Errorf("failed to read state file: %w", err)
	}

	var state instanceState
	if err = json.Unmarshal(data, &state); err != nil {
		return "", fmt.Errorf("failed to unmarshal state file: %w", err)
	}
	if state.InstanceID == "" {
		return "", fmt.Errorf("state file is invalid: missing instance_id")
	}
	return state.InstanceID, nil
}
