package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/abdrasaq14/payever-test/config"
	"github.com/abdrasaq14/payever-test/pkg/helpers"
	"github.com/abdrasaq14/payever-test/pkg/mailer"
)

// app-level container holding components constructed once in main so the
// router modules can wire themselves from the same instances.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	mailgun     *mailer.Mailgun
	rabbitPub   *helpers.RabbitPublisher
)

func SetConfig(c *config.Config)              { cfg = c }
func GetConfig() *config.Config               { return cfg }
func SetLogger(l *logrus.Logger)              { logger = l }
func GetLogger() *logrus.Logger               { return logger }
func SetPGPool(p *pgxpool.Pool)               { pgPool = p }
func GetPGPool() *pgxpool.Pool                { return pgPool }
func SetRedis(r *redis.Client)                { redisClient = r }
func GetRedis() *redis.Client                 { return redisClient }
func SetMailgun(m *mailer.Mailgun)            { mailgun = m }
func GetMailgun() *mailer.Mailgun             { return mailgun }
func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
