package meeting_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"minutely/internal/api/controllers"
	"minutely/internal/repositories"
	"minutely/internal/services"
)

var Module = fx.Provide(
	provideMeetingRepo, provideTaskRepo,
	provideMeetingService, provideTaskService,
	controllers.NewMeetingController, controllers.NewTaskController,
)

func provideMeetingRepo(db *gorm.DB) repositories.MeetingRepository {
	return repositories.NewMeetingRepository(db)
}

func provideTaskRepo(db *gorm.DB) repositories.TaskRepository {
	return repositories.NewTaskRepository(db)
}

func provideMeetingService(meetingRepo repositories.MeetingRepository) services.MeetingServiceInterface {
	return services.NewMeetingService(meetingRepo)
}

func provideTaskService(taskRepo repositories.TaskRepository, meetingRepo repositories.MeetingRepository) services.TaskServiceInterface {
	return services.NewTaskService(taskRepo, meetingRepo)
}
