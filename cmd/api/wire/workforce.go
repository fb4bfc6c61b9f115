//go:build wireinject
// +build wireinject

package wire

import (
	"workforce-server/internal/infra/async"
	"workforce-server/internal/workforce/communication"
	"workforce-server/internal/workforce/httpapi"
	"workforce-server/internal/workforce/persistence"
	"workforce-server/internal/workforce/usecases"

	"github.com/google/wire"
)

func InitializeDepartmentController() (*httpapi.DepartmentController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		persistence.NewDepartmentRepository,
		wire.Bind(new(usecases.DepartmentRepository), new(*persistence.SimpleDepartmentRepository)),
		usecases.NewDepartmentService,
		wire.Bind(new(usecases.DepartmentService), new(*usecases.SimpleDepartmentService)),
		httpapi.NewDepartmentController,
	)
	return nil, nil
}

func InitializeDutyController() (*httpapi.DutyController, error) {
	wire.Build(
		provideAppConfig,
		DutyServiceSet,
		wire.Bind(new(usecases.DutyService), new(*usecases.SimpleDutyService)),
		httpapi.NewDutyController,
	)
	return nil, nil
}

func InitializeUserController() (*httpapi.UserController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		persistence.NewUserRepository,
		wire.Bind(new(usecases.UserRepository), new(*persistence.SimpleUserRepository)),
		persistence.NewDutyRepository,
		wire.Bind(new(usecases.DutyRepository), new(*persistence.SimpleDutyRepository)),
		usecases.NewUserService,
		wire.Bind(new(usecases.UserService), new(*usecases.SimpleUserService)),
		httpapi.NewUserController,
	)
	return nil, nil
}

func InitializeTaskController(broker async.InternalBroker) (*httpapi.TaskController, error) {
	wire.Build(
		provideAppConfig,
		provideLocation,
		DutyServiceSet,
		wire.Bind(new(usecases.DutyService), new(*usecases.SimpleDutyService)),
		persistence.NewTaskLogRepository,
		wire.Bind(new(usecases.TaskLogRepository), new(*persistence.SimpleTaskLogRepository)),
		persistence.NewUserRepository,
		wire.Bind(new(usecases.UserRepository), new(*persistence.SimpleUserRepository)),
		communication.NewTaskEventPublisher,
		wire.Bind(new(usecases.TaskEventPublisher), new(*communication.TaskEventPublisher)),
		usecases.NewTaskService,
		wire.Bind(new(usecases.TaskService), new(*usecases.SimpleTaskService)),
		httpapi.NewTaskController,
	)
	return nil, nil
}

func InitializeTaskEventWebSocketController(broker async.InternalBroker) (*httpapi.TaskEventWebSocketController, error) {
	wire.Build(
		httpapi.NewTaskEventWebSocketController,
	)
	return nil, nil
}

func InitializeHealthController() (*httpapi.HealthController, error) {
	wire.Build(
		provideAppConfig,
		providePool,
		httpapi.NewHealthController,
	)
	return nil, nil
}

func InitializeEmailNotificationWorker(broker async.InternalBroker) (*usecases.EmailNotificationWorker, error) {
	wire.Build(
		provideAppConfig,
		provideNotificationClient,
		provideDatabase,
		persistence.NewDepartmentRepository,
		wire.Bind(new(usecases.DepartmentRepository), new(*persistence.SimpleDepartmentRepository)),
		usecases.NewEmailNotificationWorker,
	)
	return nil, nil
}

func InitializeLeaveReversionWorker() (*usecases.LeaveReversionWorker, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		persistence.NewUserRepository,
		wire.Bind(new(usecases.UserRepository), new(*persistence.SimpleUserRepository)),
		usecases.NewLeaveReversionWorker,
	)
	return nil, nil
}

var DutyServiceSet = wire.NewSet(
	provideDatabase,
	provideSchemaCache,
	persistence.NewDutyRepository,
	wire.Bind(new(usecases.DutyRepository), new(*persistence.SimpleDutyRepository)),
	persistence.NewDepartmentRepository,
	wire.Bind(new(usecases.DepartmentRepository), new(*persistence.SimpleDepartmentRepository)),
	usecases.NewDutyService,
)
