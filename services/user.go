package services

import (
	"context"
	"log"
	"strings"
	"time"

	"CareHub360/audit"
	"CareHub360/authorization"
	"CareHub360/config"
	"CareHub360/models"
	"CareHub360/util"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType" binding:"required"`
}

type UpdateUserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	UserType   string `json:"userType"`
	ProfilePic string `json:"profilePic"`
}

func ValidateRegister(req *RegisterRequest) error {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.UserType == "" {
		return util.ValidationError(util.MISSING_REQUIRED_FIELDS)
	}
	if len(req.Password) < 6 {
		return util.ValidationError(util.PASSWORD_TOO_SHORT)
	}
	if !models.IsValidUserType(req.UserType) {
		return util.ValidationError(util.INVALID_USER_TYPE)
	}
	return nil
}

/*
* Emails are stored lowercase and must be unique
* Passwords are bcrypt hashed before they touch the store
 */
func RegisterUser(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	if err := ValidateRegister(req); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	collection := config.OpenCollection(util.UserCollection)
	count, err := collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, util.StoreError(err)
	}
	if count > 0 {
		return nil, util.ValidationError(util.USER_ALREADY_EXISTS)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, util.StoreError(err)
	}

	user := &models.User{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     email,
		Password:  string(hashed),
		UserType:  req.UserType,
		CreatedAt: time.Now().UTC(),
		LastLogin: time.Now().UTC(),
	}
	if _, err := collection.InsertOne(ctx, user); err != nil {
		return nil, util.StoreError(err)
	}
	return user, nil
}

/*
* Find by email, compare the hash
* Refresh lastLogin and issue a session token
 */
func LoginUser(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", util.AuthError(util.INVALID_CREDENTIALS)
	}

	collection := config.OpenCollection(util.UserCollection)
	user := &models.User{}
	err := collection.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, "", util.AuthError(util.INVALID_CREDENTIALS)
	}
	if err != nil {
		return nil, "", util.StoreError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", util.AuthError(util.INVALID_CREDENTIALS)
	}

	now := time.Now().UTC()
	if _, err := collection.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{"lastLogin": now}}); err != nil {
		log.Println("Error updating lastLogin:", err)
	}
	user.LastLogin = now

	token, err := authorization.GenerateToken(user)
	if err != nil {
		return nil, "", util.StoreError(err)
	}
	return user, token, nil
}

func ListUsers(ctx context.Context) ([]models.User, error) {
	collection := config.OpenCollection(util.UserCollection)
	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, util.StoreError(err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, util.StoreError(err)
	}
	return users, nil
}

func GetUser(ctx context.Context, userId string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, util.NotFoundError(util.USER_NOT_FOUND)
	}
	collection := config.OpenCollection(util.UserCollection)
	user := &models.User{}
	err = collection.FindOne(ctx, bson.M{"_id": oid}).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, util.NotFoundError(util.USER_NOT_FOUND)
	}
	if err != nil {
		return nil, util.StoreError(err)
	}
	return user, nil
}

func UpdateUser(ctx context.Context, userId string, req *UpdateUserRequest, actor string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, util.NotFoundError(util.USER_NOT_FOUND)
	}

	fields := bson.M{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Email != "" {
		fields["email"] = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.UserType != "" {
		if !models.IsValidUserType(req.UserType) {
			return nil, util.ValidationError(util.INVALID_USER_TYPE)
		}
		fields["userType"] = req.UserType
	}
	if req.ProfilePic != "" {
		fields["profilePic"] = req.ProfilePic
	}
	if len(fields) == 0 {
		return GetUser(ctx, userId)
	}

	collection := config.OpenCollection(util.UserCollection)
	user := &models.User{}
	err = collection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, util.NotFoundError(util.USER_NOT_FOUND)
	}
	if err != nil {
		return nil, util.StoreError(err)
	}
	audit.Record(ctx, actor, "update", "user", userId, "")
	return user, nil
}

func DeleteUser(ctx context.Context, userId, actor string) error {
	oid, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return util.NotFoundError(util.USER_NOT_FOUND)
	}
	collection := config.OpenCollection(util.UserCollection)
	result, err := collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return util.StoreError(err)
	}
	if result.DeletedCount == 0 {
		return util.NotFoundError(util.USER_NOT_FOUND)
	}
	audit.Record(ctx, actor, "delete", "user", userId, "")
	return nil
}

// FindOrCreatePatient resolves a patient account by email, creating one with
// a random password when the upload names a patient the system has not seen.
func FindOrCreatePatient(ctx context.Context, name, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, util.ValidationError(util.PATIENT_EMAIL_REQUIRED)
	}

	collection := config.OpenCollection(util.UserCollection)
	user := &models.User{}
	err := collection.FindOne(ctx, bson.M{"email": email, "userType": models.UserTypePatient}).Decode(user)
	if err == nil {
		return user, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, util.StoreError(err)
	}

	return RegisterUser(ctx, &RegisterRequest{
		Name:     name,
		Email:    email,
		Password: uuid.NewString(),
		UserType: models.UserTypePatient,
	})
}

// FindDoctorAccountByName resolves a doctor account for report attribution.
func FindDoctorAccountByName(ctx context.Context, name string) (*models.User, error) {
	collection := config.OpenCollection(util.UserCollection)
	user := &models.User{}
	err := collection.FindOne(ctx, bson.M{"name": name, "userType": models.UserTypeDoctor}).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, util.NotFoundError(util.DOCTOR_NOT_FOUND)
	}
	if err != nil {
		return nil, util.StoreError(err)
	}
	return user, nil
}
