package postgres

import (
	"context"
	"sort"

	"ishop/internal/domain/entity"
	domainerrors "ishop/internal/domain/errors"
	"ishop/internal/domain/repository"
	"ishop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	*crudRepository[model.UserModel, entity.User]
	db *gorm.DB
}

// userSchema is the static description of the users collection: which
// columns keyword search covers, which an admin partial update may touch,
// and which are exposed to filters and sorting. PasswordHash and the
// one-time code columns are deliberately absent from the updatable list.
var userSchema = newResourceSchema(
	"user",
	[]string{"full_name", "email"},
	[]string{
		"full_name", "phone", "profile_image", "role", "active_account",
		"address_details", "address_governorate", "address_city", "address_postal_code",
	},
	[]string{"id", "email", "created_at", "updated_at"},
)

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		crudRepository: newCRUDRepository(db, userSchema, toUserDomain, fromUserDomain, "WishListItems"),
		db:             db,
	}
}

// FindByEmail retrieves a single user by their case-folded email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.query(ctx).Where("email = ?", email).First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Update persists the full user entity, replacing the wishlist association
// so removals take effect.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userM.ID).Delete(&model.WishListItemModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to replace wishlist items")
		}

		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(userM).Error
	})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// DeleteByEmail removes the user with the given email.
func (repo *userRepository) DeleteByEmail(ctx context.Context, email string) error {
	res := repo.db.WithContext(ctx).Where("email = ?", email).Delete(&model.UserModel{})
	if res.Error != nil {
		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to delete user by email")
	}
	if res.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:                data.ID,
		FullName:          data.FullName,
		Email:             data.Email,
		Phone:             data.Phone,
		PasswordHash:      data.PasswordHash,
		ProfileImage:      data.ProfileImage,
		Role:              entity.Role(data.Role),
		ActiveAccount:     data.ActiveAccount,
		PasswordChangedAt: data.PasswordChangedAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}

	if data.Address != (model.AddressModel{}) {
		user.Address = &entity.Address{
			Details:     data.Address.Details,
			Governorate: data.Address.Governorate,
			City:        data.Address.City,
			PostalCode:  data.Address.PostalCode,
		}
	}

	if data.SignUpCodeHash != nil && data.SignUpCodeExpires != nil {
		user.SignUpCode = &entity.OneTimeCode{
			CodeHash:  *data.SignUpCodeHash,
			ExpiresAt: *data.SignUpCodeExpires,
		}
	}

	if data.PwResetCodeHash != nil && data.PwResetExpires != nil {
		user.PasswordReset = &entity.PasswordResetCode{
			OneTimeCode: entity.OneTimeCode{
				CodeHash:  *data.PwResetCodeHash,
				ExpiresAt: *data.PwResetExpires,
			},
			Verified: data.PwResetVerified != nil && *data.PwResetVerified,
		}
	}

	items := make([]model.WishListItemModel, len(data.WishListItems))
	copy(items, data.WishListItems)
	sort.Slice(items, func(i, j int) bool { return items[i].Position < items[j].Position })
	for _, item := range items {
		user.WishList = append(user.WishList, item.ProductID)
	}

	return user
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:                data.ID,
		FullName:          data.FullName,
		Email:             data.Email,
		Phone:             data.Phone,
		PasswordHash:      data.PasswordHash,
		ProfileImage:      data.ProfileImage,
		Role:              data.Role.String(),
		ActiveAccount:     data.ActiveAccount,
		PasswordChangedAt: data.PasswordChangedAt,
		// Save writes every column, so created_at must round-trip or a
		// zero value would overwrite it.
		CreatedAt: data.CreatedAt,
	}

	if data.Address != nil {
		userM.Address = model.AddressModel{
			Details:     data.Address.Details,
			Governorate: data.Address.Governorate,
			City:        data.Address.City,
			PostalCode:  data.Address.PostalCode,
		}
	}

	if data.SignUpCode != nil {
		userM.SignUpCodeHash = &data.SignUpCode.CodeHash
		userM.SignUpCodeExpires = &data.SignUpCode.ExpiresAt
	}

	if data.PasswordReset != nil {
		userM.PwResetCodeHash = &data.PasswordReset.CodeHash
		userM.PwResetExpires = &data.PasswordReset.ExpiresAt
		userM.PwResetVerified = &data.PasswordReset.Verified
	}

	for i, productID := range data.WishList {
		userM.WishListItems = append(userM.WishListItems, model.WishListItemModel{
			UserID:    data.ID,
			ProductID: productID,
			Position:  i,
		})
	}

	return userM
}
