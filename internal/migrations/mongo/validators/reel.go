package validators

import "go.mongodb.org/mongo-driver/bson"

var ReelValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"_id",
			"url",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"url": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 2048,
			},

			"title": bson.M{
				"bsonType":  "string",
				"maxLength": 200,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
