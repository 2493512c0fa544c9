package parser

const exampleUsers = `CREATE TABLE ` + "`users`" + ` (
  id bigint NOT NULL AUTO_INCREMENT COMMENT '主键',
  name varchar(50) NOT NULL COMMENT '用户名',
  status tinyint(1) DEFAULT '1' COMMENT '状态【枚举】：0-禁用，1-启用',
  PRIMARY KEY (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COMMENT='用户表';`

const exampleOrders = `CREATE TABLE shop.orders (
  order_id bigint NOT NULL AUTO_INCREMENT,
  user_id bigint NOT NULL COMMENT '下单用户',
  price decimal(10,2) DEFAULT '0,00' COMMENT 'unit price, in CNY',
  state tinyint DEFAULT 0 COMMENT '订单状态【枚举】：0-待处理，1-处理中，2-已完成',
  created_at datetime DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (order_id),
  KEY idx_user (user_id),
  FOREIGN KEY (user_id) REFERENCES users(id)
) ENGINE=InnoDB COMMENT='订单表';`

const exampleCommented = `-- 用户表：业务主表
/* legacy dump,
   do not edit by hand */
# generated at 2024-07-01
CREATE TABLE t1 (
  id int NOT NULL,
  remark varchar(255) DEFAULT NULL
);`
