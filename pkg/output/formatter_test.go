package output_test

import (
	"encoding/json"
	"testing"

	"github.com/ferrumfit/ratecard/pkg/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type planRow struct {
	Name      string   `json:"name"`
	BaseCost  float64  `json:"base_cost"`
	Benefits  []string `json:"benefits"`
	Available bool     `json:"available"`
}

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &output.JSONFormatter{}, output.NewFormatter("json"))
	assert.IsType(t, &output.YAMLFormatter{}, output.NewFormatter("YAML"))
	assert.IsType(t, &output.TableFormatter{}, output.NewFormatter("table"))
	assert.IsType(t, &output.TableFormatter{}, output.NewFormatter(""))
	assert.IsType(t, &output.TableFormatter{}, output.NewFormatter("bogus"))
}

func TestTableFormatter_SliceOfStructs(t *testing.T) {
	rows := []planRow{
		{Name: "Basic", BaseCost: 29.99, Benefits: []string{"Gym floor", "Lockers"}, Available: true},
		{Name: "Family", BaseCost: 99.99, Benefits: []string{"Family lounge"}, Available: false},
	}

	got := (&output.TableFormatter{}).Format(rows)

	assert.Contains(t, got, "NAME")
	assert.Contains(t, got, "BASE COST")
	assert.Contains(t, got, "AVAILABLE")
	assert.Contains(t, got, "29.99")
	assert.Contains(t, got, "Gym floor, Lockers")
	assert.Contains(t, got, "yes")
	assert.Contains(t, got, "no")
}

func TestTableFormatter_EmptySlice(t *testing.T) {
	got := (&output.TableFormatter{}).Format([]planRow{})
	assert.Equal(t, "No entries found.\n", got)
}

func TestTableFormatter_SingleStruct(t *testing.T) {
	got := (&output.TableFormatter{}).Format(planRow{Name: "Premium", BaseCost: 59.99, Available: true})

	assert.Contains(t, got, "NAME:")
	assert.Contains(t, got, "Premium")
	assert.Contains(t, got, "59.99")
}

func TestTableFormatter_StringSlice(t *testing.T) {
	got := (&output.TableFormatter{}).Format([]string{"Basic", "Premium"})
	assert.Contains(t, got, "Basic\n")
	assert.Contains(t, got, "Premium\n")
}

func TestJSONFormatter_RoundTrips(t *testing.T) {
	row := planRow{Name: "Basic", BaseCost: 29.99, Available: true}

	got := (&output.JSONFormatter{}).Format(row)

	var back planRow
	require.NoError(t, json.Unmarshal([]byte(got), &back))
	assert.Equal(t, row, back)
}

func TestYAMLFormatter_RoundTrips(t *testing.T) {
	row := planRow{Name: "Basic", BaseCost: 29.99, Benefits: []string{"Gym floor"}, Available: true}

	got := (&output.YAMLFormatter{}).Format(row)

	var back planRow
	require.NoError(t, yaml.Unmarshal([]byte(got), &back))
	assert.Equal(t, row, back)
}
