package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"_id",
			"name",
			"phone",
			"preferred_date",
			"preferred_time",
			"event_type",
			"status",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},

			"phone": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 32,
			},

			"preferred_date": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 32,
			},

			"preferred_time": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 32,
			},

			"event_type": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},

			"location": bson.M{
				"bsonType":  "string",
				"maxLength": 200,
			},

			"selected_package": bson.M{
				"bsonType":  "string",
				"maxLength": 100,
			},

			"important_info": bson.M{
				"bsonType":  "string",
				"maxLength": 2000,
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"pending",
					"confirmed",
					"completed",
				},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
