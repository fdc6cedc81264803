package repository

import (
	"github.com/vendorlynx/vendorlynx-go/internal/domain/workorder"
	"gorm.io/gorm"
)

type WorkOrderRepo interface {
	CreateWorkOrder(wo *workorder.WorkOrder) error
	GetWorkOrderByID(id uint) (workorder.WorkOrder, error)
	// UpdateWorkOrderStatus performs a compare-and-swap on the current
	// status; extra carries any field updates applied with the swap
	// (reschedule dates). Returns false when the row no longer matches
	// expect, i.e. a concurrent transition won.
	UpdateWorkOrderStatus(id uint, expect, next workorder.Status, extra map[string]interface{}) (bool, error)
	GetWorkOrderView(id uint) (workorder.View, error)
	ListWorkOrderViewsByVendor(vendorID uint) ([]workorder.View, error)
	ListWorkOrderViewsByVendorAndProject(vendorID, projectID uint) ([]workorder.View, error)
	CreateLog(l *workorder.Log) error
	ListLogs(workOrderID uint) ([]workorder.Log, error)
	WithTx(tx *gorm.DB) WorkOrderRepo
}

type DBWorkOrderRepo struct {
	db *gorm.DB
}

func NewWorkOrderRepo(db *gorm.DB) *DBWorkOrderRepo {
	return &DBWorkOrderRepo{db: db}
}

func (r *DBWorkOrderRepo) CreateWorkOrder(wo *workorder.WorkOrder) error {
	return r.db.Create(wo).Error
}

func (r *DBWorkOrderRepo) GetWorkOrderByID(id uint) (workorder.WorkOrder, error) {
	var wo workorder.WorkOrder
	err := r.db.First(&wo, id).Error
	return wo, err
}

func (r *DBWorkOrderRepo) UpdateWorkOrderStatus(id uint, expect, next workorder.Status, extra map[string]interface{}) (bool, error) {
	updates := map[string]interface{}{"work_order_status": next}
	for k, v := range extra {
		updates[k] = v
	}
	res := r.db.Model(&workorder.WorkOrder{}).
		Where("id = ? AND work_order_status = ?", id, expect).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

const workOrderViewSelect = `
	work_orders.id, work_orders.name, work_orders.start_date_time,
	work_orders.end_date_time, work_orders.work_order_status,
	work_orders.project_id, projects.name AS project_name,
	projects.property_manager_id, work_orders.vendor_id,
	accounts.company_name AS vendor_company`

func (r *DBWorkOrderRepo) viewQuery() *gorm.DB {
	return r.db.Table("work_orders").
		Select(workOrderViewSelect).
		Joins("JOIN projects ON projects.id = work_orders.project_id").
		Joins("JOIN accounts ON accounts.id = work_orders.vendor_id")
}

func (r *DBWorkOrderRepo) GetWorkOrderView(id uint) (workorder.View, error) {
	var v workorder.View
	err := r.viewQuery().Where("work_orders.id = ?", id).Take(&v).Error
	return v, err
}

func (r *DBWorkOrderRepo) ListWorkOrderViewsByVendor(vendorID uint) ([]workorder.View, error) {
	var views []workorder.View
	err := r.viewQuery().
		Where("work_orders.vendor_id = ?", vendorID).
		Order("work_orders.start_date_time").
		Scan(&views).Error
	return views, err
}

func (r *DBWorkOrderRepo) ListWorkOrderViewsByVendorAndProject(vendorID, projectID uint) ([]workorder.View, error) {
	var views []workorder.View
	err := r.viewQuery().
		Where("work_orders.vendor_id = ? AND work_orders.project_id = ?", vendorID, projectID).
		Order("work_orders.start_date_time").
		Scan(&views).Error
	return views, err
}

func (r *DBWorkOrderRepo) CreateLog(l *workorder.Log) error {
	return r.db.Create(l).Error
}

func (r *DBWorkOrderRepo) ListLogs(workOrderID uint) ([]workorder.Log, error) {
	var logs []workorder.Log
	err := r.db.Where("work_order_id = ?", workOrderID).
		Order("created_at").
		Find(&logs).Error
	return logs, err
}

func (r *DBWorkOrderRepo) WithTx(tx *gorm.DB) WorkOrderRepo {
	if tx == nil {
		return r
	}
	return &DBWorkOrderRepo{db: tx}
}
