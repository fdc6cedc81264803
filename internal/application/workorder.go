package application

import (
	"encoding/json"
	"errors"

	"github.com/vendorlynx/vendorlynx-go/internal/domain/notification"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/project"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/workorder"
	"github.com/vendorlynx/vendorlynx-go/internal/repository"
	"github.com/vendorlynx/vendorlynx-go/pkg/types"
	"gorm.io/gorm"
)

// WorkOrderService orchestrates one lifecycle transition end-to-end:
// load, authorize, decide, persist, fan out. The status swap and the
// notification insert share one transaction so a crash between them
// cannot drop the notification.
type WorkOrderService struct {
	Repos    *repository.Repos
	Notifier *NotificationService
}

func NewWorkOrderService(repos *repository.Repos, notifier *NotificationService) *WorkOrderService {
	return &WorkOrderService{Repos: repos, Notifier: notifier}
}

func (s *WorkOrderService) CreateWorkOrder(claims *types.Claims, projectID uint, input workorder.CreateWorkOrderDTO) (*workorder.View, error) {
	if claims.Role != types.RolePropertyManager {
		return nil, ErrNotEntitled
	}
	proj, err := s.Repos.Project.GetProjectByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	if proj.PropertyManagerID != claims.AccountID {
		return nil, ErrNotEntitled
	}
	if err := workorder.ValidateSchedule(input.StartDateTime, input.EndDateTime); err != nil {
		return nil, err
	}
	vend, err := s.Repos.Account.GetAccountByID(input.VendorID)
	if err != nil || vend.Role != types.RoleVendor {
		return nil, ErrVendorNotFound
	}

	var (
		view workorder.View
		note *notification.Notification
	)
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		wo := &workorder.WorkOrder{
			Name:            input.Name,
			StartDateTime:   input.StartDateTime,
			EndDateTime:     input.EndDateTime,
			WorkOrderStatus: workorder.StatusPending,
			ProjectID:       proj.ID,
			VendorID:        input.VendorID,
		}
		if err := tx.WorkOrder.CreateWorkOrder(wo); err != nil {
			return err
		}
		n, err := s.Notifier.Dispatch(tx, notification.DispatchInput{
			SenderID:      proj.PropertyManagerID,
			SenderType:    notification.PartyPropertyManager,
			RecipientID:   wo.VendorID,
			RecipientType: notification.PartyVendor,
			Type:          notification.WorkOrderCreated,
			Data: notification.Data{
				ProjectID:   proj.ID,
				ProjectName: proj.Name,
				WorkOrderID: wo.ID,
			},
		})
		if err != nil {
			return err
		}
		note = n
		view, err = tx.WorkOrder.GetWorkOrderView(wo.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.Notifier.Push(note)
	return &view, nil
}

func (s *WorkOrderService) AcceptWorkOrder(claims *types.Claims, projectID, workOrderID uint) (*workorder.View, error) {
	return s.transition(claims, projectID, workOrderID, workorder.ActionAccept, nil)
}

func (s *WorkOrderService) RescheduleByVendor(claims *types.Claims, projectID, workOrderID uint, input workorder.RescheduleDTO) (*workorder.View, error) {
	return s.transition(claims, projectID, workOrderID, workorder.ActionRescheduleVendor, &input)
}

func (s *WorkOrderService) RescheduleByPropertyManager(claims *types.Claims, projectID, workOrderID uint, input workorder.RescheduleDTO) (*workorder.View, error) {
	return s.transition(claims, projectID, workOrderID, workorder.ActionReschedulePropertyManager, &input)
}

func (s *WorkOrderService) CloseWorkOrder(claims *types.Claims, projectID, workOrderID uint) (*workorder.View, error) {
	return s.transition(claims, projectID, workOrderID, workorder.ActionClose, nil)
}

// transition runs the shared orchestration for all four mutating
// actions. The status update is a compare-and-swap on the status read
// here; a concurrent transition makes it miss and the whole unit rolls
// back with ErrConflict.
func (s *WorkOrderService) transition(claims *types.Claims, projectID, workOrderID uint, action workorder.Action, dates *workorder.RescheduleDTO) (*workorder.View, error) {
	role, ok := workorder.ActorOf(action)
	if !ok {
		return nil, workorder.ErrInvalidTransition
	}
	if claims.Role != role {
		return nil, ErrNotEntitled
	}

	wo, err := s.Repos.WorkOrder.GetWorkOrderByID(workOrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkOrderNotFound
		}
		return nil, err
	}
	if projectID != 0 && wo.ProjectID != projectID {
		return nil, ErrWorkOrderNotFound
	}
	proj, err := s.Repos.Project.GetProjectByID(wo.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	if err := s.authorize(claims, role, &wo, &proj); err != nil {
		return nil, err
	}

	if dates != nil {
		if err := workorder.ValidateSchedule(dates.StartDateTime, dates.EndDateTime); err != nil {
			return nil, err
		}
	}

	out, err := workorder.Decide(wo.WorkOrderStatus, action)
	if err != nil {
		return nil, err
	}

	dispatch, err := s.dispatchInput(out.Notification, &wo, &proj)
	if err != nil {
		return nil, err
	}

	var (
		view workorder.View
		note *notification.Notification
	)
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		extra := map[string]interface{}{}
		if dates != nil {
			extra["start_date_time"] = dates.StartDateTime
			extra["end_date_time"] = dates.EndDateTime
		}
		swapped, err := tx.WorkOrder.UpdateWorkOrderStatus(wo.ID, wo.WorkOrderStatus, out.Next, extra)
		if err != nil {
			return err
		}
		if !swapped {
			return ErrConflict
		}
		n, err := s.Notifier.Dispatch(tx, dispatch)
		if err != nil {
			return err
		}
		note = n
		view, err = tx.WorkOrder.GetWorkOrderView(wo.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.Notifier.Push(note)
	return &view, nil
}

func (s *WorkOrderService) authorize(claims *types.Claims, role types.Role, wo *workorder.WorkOrder, proj *project.Project) error {
	switch role {
	case types.RoleVendor:
		if wo.VendorID != claims.AccountID {
			return ErrNotEntitled
		}
	case types.RolePropertyManager:
		if proj.PropertyManagerID != claims.AccountID {
			return ErrNotEntitled
		}
	default:
		return ErrNotEntitled
	}
	return nil
}

func (s *WorkOrderService) dispatchInput(t notification.Type, wo *workorder.WorkOrder, proj *project.Project) (notification.DispatchInput, error) {
	dir, ok := notification.DirectionOf(t)
	if !ok {
		return notification.DispatchInput{}, ErrInvalidDispatch
	}
	partyID := func(p notification.PartyType) uint {
		if p == notification.PartyVendor {
			return wo.VendorID
		}
		return proj.PropertyManagerID
	}
	return notification.DispatchInput{
		SenderID:      partyID(dir.Sender),
		SenderType:    dir.Sender,
		RecipientID:   partyID(dir.Recipient),
		RecipientType: dir.Recipient,
		Type:          t,
		Data: notification.Data{
			ProjectID:   proj.ID,
			ProjectName: proj.Name,
			WorkOrderID: wo.ID,
		},
	}, nil
}

func (s *WorkOrderService) GetWorkOrder(id uint) (*workorder.View, error) {
	view, err := s.Repos.WorkOrder.GetWorkOrderView(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkOrderNotFound
		}
		return nil, err
	}
	return &view, nil
}

func (s *WorkOrderService) ListByVendor(vendorID uint) ([]workorder.View, error) {
	return s.Repos.WorkOrder.ListWorkOrderViewsByVendor(vendorID)
}

func (s *WorkOrderService) ListByVendorAndProject(vendorID, projectID uint) ([]workorder.View, error) {
	return s.Repos.WorkOrder.ListWorkOrderViewsByVendorAndProject(vendorID, projectID)
}

// logTarget loads the work order a log would attach to and runs the
// checks shared by CanCreateLog and CreateLog: only the assigned vendor
// may log, and only while the order is inProgress.
func (s *WorkOrderService) logTarget(claims *types.Claims, workOrderID uint) (*workorder.WorkOrder, error) {
	if claims.Role != types.RoleVendor {
		return nil, ErrNotEntitled
	}
	wo, err := s.Repos.WorkOrder.GetWorkOrderByID(workOrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkOrderNotFound
		}
		return nil, err
	}
	if wo.VendorID != claims.AccountID {
		return nil, ErrNotEntitled
	}
	if wo.WorkOrderStatus != workorder.StatusInProgress {
		return nil, ErrLogNotAllowed
	}
	return &wo, nil
}

// CanCreateLog reports whether the caller may log against the work
// order right now. The handler checks this before uploading attachments
// so a rejected request leaves nothing behind in object storage.
func (s *WorkOrderService) CanCreateLog(claims *types.Claims, workOrderID uint) error {
	_, err := s.logTarget(claims, workOrderID)
	return err
}

// CreateLog appends a progress note.
func (s *WorkOrderService) CreateLog(claims *types.Claims, workOrderID uint, input workorder.CreateLogDTO, imageKeys []string) (*workorder.Log, error) {
	wo, err := s.logTarget(claims, workOrderID)
	if err != nil {
		return nil, err
	}

	if imageKeys == nil {
		imageKeys = []string{}
	}
	images, err := json.Marshal(imageKeys)
	if err != nil {
		return nil, err
	}
	l := &workorder.Log{
		WorkOrderID: wo.ID,
		Title:       input.Title,
		Comment:     input.Comment,
		Images:      images,
	}
	if err := s.Repos.WorkOrder.CreateLog(l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *WorkOrderService) ListLogs(workOrderID uint) ([]workorder.Log, error) {
	if _, err := s.Repos.WorkOrder.GetWorkOrderByID(workOrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkOrderNotFound
		}
		return nil, err
	}
	return s.Repos.WorkOrder.ListLogs(workOrderID)
}
