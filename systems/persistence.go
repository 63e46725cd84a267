package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/kinematic/components"
	cfg "github.com/automoto/kinematic/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const tuningItem = "tuning"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for tuning storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSavedTuning returns the stored tuning, or nil when nothing was saved.
func LoadSavedTuning() (*cfg.Tuning, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(tuningItem)
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	tuning := cfg.CurrentTuning()
	if err := json.Unmarshal(data, &tuning); err != nil {
		log.Printf("Warning: Could not parse saved tuning: %v", err)
		return nil, err
	}
	if err := tuning.Validate(); err != nil {
		log.Printf("Warning: Ignoring saved tuning: %v", err)
		return nil, err
	}
	return &tuning, nil
}

// SaveTuning stores t
func SaveTuning(t cfg.Tuning) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(t)
	if err != nil {
		log.Printf("Warning: Could not serialize tuning: %v", err)
		return err
	}
	if err := gdataManager.SaveItem(tuningItem, data); err != nil {
		log.Printf("Warning: Could not save tuning: %v", err)
		return err
	}
	return nil
}

// UpdateSaveTuning persists the active tuning when the save key is pressed.
func UpdateSaveTuning(ecs *ecs.ECS) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	if GetAction(components.Input.Get(entry), cfg.ActionSaveTuning).JustPressed {
		if err := SaveTuning(cfg.CurrentTuning()); err == nil {
			log.Println("tuning saved")
		}
	}
}
