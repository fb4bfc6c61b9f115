package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"workforce-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

// PaginatedResponse mirrors the list envelope returned by the API.
type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	} `json:"pagination"`
}

type FeatureContext struct {
	apiDriver        *driver.APIDriver
	response         *http.Response
	responseData     map[string]any
	responseListData []map[string]any
	departmentID     string
	dutyID           string
	employeeID       string
	taskLogID        string
	require          *require.Assertions
	t                godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver("http://localhost:3000"),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Step(`^wait for (.*)$`, fc.waitForDuration)
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)

	// Department steps
	ctx.When(`^I create a new department with name "([^"]*)" and email "([^"]*)"$`, fc.iCreateANewDepartmentWithNameAndEmail)
	ctx.Given(`^a department exists with name "([^"]*)" and email "([^"]*)"$`, fc.aDepartmentExistsWithNameAndEmail)
	ctx.When(`^I get the department by its ID$`, fc.iGetTheDepartmentByItsID)
	ctx.Then(`^the response should contain the department with name "([^"]*)"$`, fc.theResponseShouldContainTheDepartmentWithName)
	ctx.When(`^I list all departments$`, fc.iListAllDepartments)
	ctx.Then(`^the list should contain the department with name "([^"]*)"$`, fc.theListShouldContainTheDepartmentWithName)
	ctx.When(`^I update the department with a new name "([^"]*)"$`, fc.iUpdateTheDepartmentWithANewName)
	ctx.When(`^I delete the department$`, fc.iDeleteTheDepartment)

	// Duty steps
	ctx.Given(`^a duty exists for the department with title "([^"]*)"$`, fc.aDutyExistsForTheDepartmentWithTitle)
	ctx.When(`^I create a duty for the department with title "([^"]*)"$`, fc.iCreateADutyForTheDepartmentWithTitle)
	ctx.When(`^I get the duty by its ID$`, fc.iGetTheDutyByItsID)
	ctx.Then(`^the response should contain the duty with title "([^"]*)"$`, fc.theResponseShouldContainTheDutyWithTitle)
	ctx.When(`^I list the duties of the department$`, fc.iListTheDutiesOfTheDepartment)
	ctx.Then(`^the list should contain the duty with title "([^"]*)"$`, fc.theListShouldContainTheDutyWithTitle)
	ctx.When(`^I fetch the duty's form schema$`, fc.iFetchTheDutysFormSchema)
	ctx.Then(`^the schema should contain the field "([^"]*)"$`, fc.theSchemaShouldContainTheField)
	ctx.When(`^I validate a submission with note "([^"]*)"$`, fc.iValidateASubmissionWithNote)
	ctx.When(`^I validate an empty submission$`, fc.iValidateAnEmptySubmission)
	ctx.Then(`^the validation result should be valid$`, fc.theValidationResultShouldBeValid)
	ctx.Then(`^the validation result should be invalid$`, fc.theValidationResultShouldBeInvalid)
	ctx.When(`^I deactivate the duty$`, fc.iDeactivateTheDuty)

	// User steps
	ctx.Given(`^an employee exists with name "([^"]*)" assigned to the duty$`, fc.anEmployeeExistsWithNameAssignedToTheDuty)
	ctx.When(`^I put the employee on leave until "([^"]*)"$`, fc.iPutTheEmployeeOnLeaveUntil)
	ctx.When(`^I end the employee's leave$`, fc.iEndTheEmployeesLeave)
	ctx.When(`^I get the employee by their ID$`, fc.iGetTheEmployeeByTheirID)
	ctx.Then(`^the response should contain the user with status "([^"]*)"$`, fc.theResponseShouldContainTheUserWithStatus)

	// Task log steps
	ctx.When(`^the employee submits a task log with note "([^"]*)"$`, fc.theEmployeeSubmitsATaskLogWithNote)
	ctx.When(`^the admin reviews the task log with status "([^"]*)"$`, fc.theAdminReviewsTheTaskLogWithStatus)
	ctx.When(`^I get the task log by its ID$`, fc.iGetTheTaskLogByItsID)
	ctx.Then(`^the response should contain the task log with status "([^"]*)"$`, fc.theResponseShouldContainTheTaskLogWithStatus)
	ctx.When(`^the employee lists their task logs$`, fc.theEmployeeListsTheirTaskLogs)
	ctx.Then(`^the list should contain the task log$`, fc.theListShouldContainTheTaskLog)

	// Health steps
	ctx.When(`^I call the healthz endpoint$`, fc.iCallTheHealthzEndpoint)
	ctx.When(`^I call the readyz endpoint$`, fc.iCallTheReadyzEndpoint)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.responseListData = nil
	fc.departmentID = ""
	fc.dutyID = ""
	fc.employeeID = ""
	fc.taskLogID = ""
	fc.asAdmin()
}

func (fc *FeatureContext) asAdmin() {
	fc.apiDriver.As(driver.Principal{UserID: "functional-admin", Role: "admin"})
}

func (fc *FeatureContext) asEmployee() {
	fc.apiDriver.As(driver.Principal{UserID: fc.employeeID, Role: "employee", DepartmentID: fc.departmentID})
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	return json.NewDecoder(body).Decode(target)
}

func (fc *FeatureContext) decodePaginatedResponse(response *http.Response) ([]map[string]any, error) {
	var paginatedResp PaginatedResponse[map[string]any]
	if err := fc.decodeBody(response.Body, &paginatedResp); err != nil {
		return nil, fmt.Errorf("failed to decode paginated response: %w", err)
	}
	return paginatedResp.Data, nil
}
