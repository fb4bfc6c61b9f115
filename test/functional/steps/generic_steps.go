package steps

import (
	"fmt"
	"time"
)

func (fc *FeatureContext) waitForDuration(duration string) error {
	value, err := time.ParseDuration(duration)
	if err != nil {
		return err
	}
	time.Sleep(value)
	return nil
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(expected int) error {
	if fc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	fc.require.Equal(expected, fc.response.StatusCode)
	return nil
}
