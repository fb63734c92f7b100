package controller

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/chrisarpong/TEIN-Registration/internals/constants"
	"github.com/chrisarpong/TEIN-Registration/internals/features/membership/members/dto"
	"github.com/chrisarpong/TEIN-Registration/internals/features/membership/members/model"
	"github.com/chrisarpong/TEIN-Registration/internals/features/membership/members/service"
	paymentModel "github.com/chrisarpong/TEIN-Registration/internals/features/membership/payments/model"
	helper "github.com/chrisarpong/TEIN-Registration/internals/helpers"
)

var validate = validator.New()

type MemberAdminController struct {
	DB *gorm.DB
}

func NewMemberAdminController(db *gorm.DB) *MemberAdminController {
	return &MemberAdminController{DB: db}
}

// ListMembers: GET /api/a/members?search=&page=&per_page=
// Pending self-registrations (checkout never settled) stay off the roster.
func (ctrl *MemberAdminController) ListMembers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.MemberModel{}).
		Where("member_status <> ?", constants.MemberStatusPending)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + search + "%"
		q = q.Where("member_full_name ILIKE ? OR member_code ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count members")
	}

	var members []model.MemberModel
	if err := q.Order("member_created_at desc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch members")
	}

	return helper.JsonList(c, "members", members, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// CreateManualMember: POST /api/a/members — manual digitization of a
// physical record. No payment row is ever written for these.
func (ctrl *MemberAdminController) CreateManualMember(c *fiber.Ctx) error {
	var body dto.ManualMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, validationFieldErrors(err))
	}
	if err := service.ValidateLevel(body.Level); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := service.ValidatePhone(body.Phone); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	cls := service.Classify(service.ChannelManualDigitization, body.CustomID)
	prefix := service.AdmissionYearPrefix(body.Level, time.Now().Year())

	member := model.MemberModel{
		MemberCode:                cls.MemberCode,
		MemberFullName:            body.FullName,
		MemberProgram:             body.Program,
		MemberLevel:               body.Level,
		MemberGender:              body.Gender,
		MemberPhone:               body.Phone,
		MemberStudentID:           body.StudentID,
		MemberResidence:           body.Residence,
		MemberConstituency:        body.Constituency,
		MemberAdmissionYearPrefix: prefix,
		MemberIsManual:            cls.IsManual,
		MemberStatus:              constants.MemberStatusActive,
	}
	if body.Email != "" {
		member.MemberEmail = &body.Email
	}

	if err := ctrl.DB.Create(&member).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, service.ErrDuplicateCode.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save member: "+err.Error())
	}

	return helper.JsonCreated(c, "Record saved", member)
}

// UpdateMember: PUT /api/a/members/:id — profile edit, no state change.
func (ctrl *MemberAdminController) UpdateMember(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	var body dto.UpdateMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, validationFieldErrors(err))
	}
	if err := service.ValidateProfileUpdate(service.ProfileUpdate{
		FullName: body.FullName,
		Program:  body.Program,
		Level:    body.Level,
		Phone:    body.Phone,
	}); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var member model.MemberModel
	if err := ctrl.DB.Where("member_id = ?", memberID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No such membership")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	updates := map[string]any{
		"member_full_name":    body.FullName,
		"member_program":      body.Program,
		"member_level":        body.Level,
		"member_phone":        body.Phone,
		"member_gender":       body.Gender,
		"member_residence":    body.Residence,
		"member_constituency": body.Constituency,
	}
	if err := ctrl.DB.Model(&member).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update member: "+err.Error())
	}

	return helper.JsonUpdated(c, "Member updated", member)
}

// DeleteMember: DELETE /api/a/members/:id — hard delete, irreversible.
func (ctrl *MemberAdminController) DeleteMember(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	res := ctrl.DB.Where("member_id = ?", memberID).Delete(&model.MemberModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete member")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No such membership")
	}

	return helper.JsonDeleted(c, "Member deleted", nil)
}

// ExportMembersCSV: GET /api/a/members/export — the dashboard's column set.
func (ctrl *MemberAdminController) ExportMembersCSV(c *fiber.Ctx) error {
	var members []model.MemberModel
	if err := ctrl.DB.
		Where("member_status <> ?", constants.MemberStatusPending).
		Order("member_created_at desc").
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch members")
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write([]string{"TEIN ID", "Name", "Program", "Level", "Phone", "Residence"})
	for _, m := range members {
		code := ""
		if m.MemberCode != nil {
			code = *m.MemberCode
		}
		_ = w.Write([]string{
			code,
			m.MemberFullName,
			m.MemberProgram,
			fmt.Sprintf("%d", m.MemberLevel),
			m.MemberPhone,
			m.MemberResidence,
		})
	}
	w.Flush()

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="tein_members.csv"`)
	return c.SendString(sb.String())
}

// Stats: GET /api/a/stats — dashboard overview numbers.
func (ctrl *MemberAdminController) Stats(c *fiber.Ctx) error {
	var totalMembers int64
	if err := ctrl.DB.Model(&model.MemberModel{}).
		Where("member_status <> ?", constants.MemberStatusPending).
		Count(&totalMembers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count members")
	}

	var totalRevenue float64
	if err := ctrl.DB.Model(&paymentModel.PaymentModel{}).
		Where("payment_status = ?", constants.PaymentStatusSuccess).
		Select("COALESCE(SUM(payment_amount), 0)").
		Scan(&totalRevenue).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sum revenue")
	}

	var recent []model.MemberModel
	if err := ctrl.DB.
		Where("member_status <> ?", constants.MemberStatusPending).
		Order("member_created_at desc").
		Limit(5).
		Find(&recent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch recent members")
	}

	return helper.JsonOK(c, "stats", fiber.Map{
		"total_members": totalMembers,
		"total_revenue": totalRevenue,
		"recent":        recent,
	})
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func validationFieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	}
	return out
}
