package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mozillazg/go-pinyin"
	"github.com/sysu-ecnc-dev/restaurant-book/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "勇", "霞", "飞", "玲",
	"超", "华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌",
	"庆", "建", "丹", "彬", "凤", "旭", "宁", "乐", "成", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var roles = []domain.Role{
	domain.RoleWaiter,
	domain.RoleChef,
	domain.RoleManager,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var digits = "0123456789"

func GenerateUsernameFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	username := ""

	for _, pinyin := range pinyinArray {
		length := rand.Intn(len(pinyin)) + 1
		username += pinyin[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	fullName := GenerateRandomChineseName()
	username := GenerateUsernameFromChineseName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         GenerateRandomRole(),
	}

	return user, nil
}

func GenerateRandomMember(emailDomainName string) *domain.Member {
	fullName := GenerateRandomChineseName()
	username := GenerateUsernameFromChineseName(fullName)

	return &domain.Member{
		FullName:      fullName,
		Phone:         "+86" + GenerateRandomPhoneNumber(),
		Email:         username + "@" + emailDomainName,
		LoyaltyPoints: int32(rand.Intn(1000)),
	}
}

func GenerateRandomPhoneNumber() string {
	number := "1" + string(digits[rand.Intn(9)+1])
	for i := 0; i < 9; i++ {
		number += string(digits[rand.Intn(len(digits))])
	}
	return number
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

// 随机生成一个不跨午夜的班次，跨周的班次在种子数据里不好控制冲突，这里不生成
func GenerateRandomShift() domain.Shift {
	day := int32(rand.Intn(7) + 1)
	startHour := rand.Intn(22)
	endHour := rand.Intn(23-startHour) + startHour + 1

	return domain.Shift{
		StartDay:  day,
		StartTime: fmt.Sprintf("%02d:%02d", startHour, rand.Intn(60)),
		EndDay:    day,
		EndTime:   fmt.Sprintf("%02d:00", endHour),
	}
}

// 随机生成一个未来一周内的预订
func GenerateRandomBooking(memberID int64) *domain.Booking {
	start := time.Now().Truncate(time.Hour).Add(time.Duration(rand.Intn(24*7)) * time.Hour)
	window := domain.NewBookingWindow(start)

	return &domain.Booking{
		MemberID:   memberID,
		NumPersons: int32(rand.Intn(8) + 1),
		StartTime:  window.Start,
		EndTime:    window.End,
	}
}
