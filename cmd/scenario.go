package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var scenarioFile string // Path to the YAML scenario file

// ScenarioConfig is the YAML layout of a batch file: a list of model
// invocations run in order.
type ScenarioConfig struct {
	Scenarios []ModelRequest `yaml:"scenarios"`
}

// LoadScenarios reads and parses a batch scenario file.
func LoadScenarios(path string) (*ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var cfg ScenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}
	if len(cfg.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file %s contains no scenarios", path)
	}
	return &cfg, nil
}

// batchCmd runs every scenario in a YAML file
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run a batch of scenarios from a YAML file",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := LoadScenarios(scenarioFile)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("running %d scenarios from %s", len(cfg.Scenarios), scenarioFile)

		for i, req := range cfg.Scenarios {
			label := req.Name
			if label == "" {
				label = fmt.Sprintf("scenario %d (%s)", i+1, req.Model)
			}
			res, err := req.Run()
			if err != nil {
				// A rejected scenario should not abort the batch; the
				// remaining entries are independent.
				fmt.Printf("=== %s ===\nerror: %v\n", label, err)
				continue
			}
			printResult(os.Stdout, label, res)
		}
	},
}

func init() {
	batchCmd.Flags().StringVar(&scenarioFile, "file", "scenarios.yaml",
		"YAML file with a list of scenarios to solve")
	rootCmd.AddCommand(batchCmd)
}
