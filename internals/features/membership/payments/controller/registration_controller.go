package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/chrisarpong/TEIN-Registration/internals/constants"
	memberModel "github.com/chrisarpong/TEIN-Registration/internals/features/membership/members/model"
	memberService "github.com/chrisarpong/TEIN-Registration/internals/features/membership/members/service"
	"github.com/chrisarpong/TEIN-Registration/internals/features/membership/payments/dto"
	"github.com/chrisarpong/TEIN-Registration/internals/features/membership/payments/model"
	"github.com/chrisarpong/TEIN-Registration/internals/features/membership/payments/service"
	helper "github.com/chrisarpong/TEIN-Registration/internals/helpers"
	"github.com/chrisarpong/TEIN-Registration/internals/helpers/storage"
)

var validate = validator.New()

type RegistrationController struct {
	DB      *gorm.DB
	Gateway service.CheckoutGateway
	Photos  *storage.PhotoStore
}

func NewRegistrationController(db *gorm.DB, gateway service.CheckoutGateway, photos *storage.PhotoStore) *RegistrationController {
	return &RegistrationController{DB: db, Gateway: gateway, Photos: photos}
}

// Register: POST /api/registrations — self-registration checkout.
// Writes a Pending member and a Pending payment, then hands back the snap
// token. Nothing becomes visible (roster, verification) until the gateway
// settles the order, so an abandoned checkout leaves no live record.
func (ctrl *RegistrationController) Register(c *fiber.Ctx) error {
	var body dto.RegistrationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, validationFieldErrors(err))
	}
	if err := memberService.ValidateLevel(body.Level); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := memberService.ValidatePhone(body.Phone); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	amount := constants.AmountRegistrationStandard
	paymentType := constants.PaymentTypeRegistrationStandard
	if body.Tier == "gold" {
		amount = constants.AmountRegistrationGold
		paymentType = constants.PaymentTypeRegistrationGold
	}

	// Upload before any row exists; a storage failure must not leave a
	// member behind.
	var photoURL *string
	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		uploaded, upErr := ctrl.Photos.UploadMemberPhoto(c.UserContext(), fh)
		if upErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Photo upload failed: "+upErr.Error())
		}
		photoURL = &uploaded
	}

	cls := memberService.Classify(memberService.ChannelSelfRegistration, "")
	prefix := memberService.AdmissionYearPrefix(body.Level, time.Now().Year())
	email := strings.TrimSpace(body.Email)

	member := memberModel.MemberModel{
		MemberCode:                cls.MemberCode,
		MemberFullName:            body.FullName,
		MemberProgram:             body.Program,
		MemberLevel:               body.Level,
		MemberGender:              body.Gender,
		MemberPhone:               body.Phone,
		MemberEmail:               &email,
		MemberStudentID:           body.StudentID,
		MemberResidence:           body.Residence,
		MemberConstituency:        body.Constituency,
		MemberPassportURL:         photoURL,
		MemberAdmissionYearPrefix: prefix,
		MemberIsManual:            cls.IsManual,
		MemberStatus:              constants.MemberStatusPending,
	}

	orderID := fmt.Sprintf("TEINREG-%d", time.Now().UnixNano())
	payment := model.PaymentModel{
		PaymentAmount:  amount,
		PaymentType:    paymentType,
		PaymentOrderID: orderID,
		PaymentStatus:  constants.PaymentStatusPending,
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&member).Error; err != nil {
			return err
		}
		payment.PaymentMemberID = member.MemberID
		return tx.Create(&payment).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to start registration: "+err.Error())
	}

	token, err := ctrl.Gateway.CreateCheckout(orderID, int64(amount*100), body.FullName, email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment gateway error: "+err.Error())
	}

	return helper.JsonCreated(c, "Checkout created", dto.CheckoutResponse{
		OrderID:   orderID,
		SnapToken: token,
		Amount:    amount,
	})
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
