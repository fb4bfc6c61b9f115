package steps

func (fc *FeatureContext) iCallTheHealthzEndpoint() error {
	response, err := fc.apiDriver.GetHealthz()
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iCallTheReadyzEndpoint() error {
	response, err := fc.apiDriver.GetReadyz()
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}
